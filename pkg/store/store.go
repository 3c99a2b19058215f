// Package store persists grading runs.
//
// A [Run] records one pass of the checker over an input file: every
// case's verdict plus summary counts. Runs are written by the pipeline
// runner when a store is configured and can be listed later, for example
// to compare submissions.
//
// Implementations:
//   - [MemoryStore]: process-local, for tests and one-shot CLI runs
//   - [MongoStore]: one document per run in a MongoDB collection
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get for an unknown run id.
var ErrNotFound = errors.New("run not found")

// Store saves and retrieves runs.
type Store interface {
	// Save inserts or replaces run, keyed by run.ID.
	Save(ctx context.Context, run *Run) error

	// Get returns the run with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (*Run, error)

	// List returns up to limit runs, most recent first. A limit of zero or
	// less returns all runs.
	List(ctx context.Context, limit int) ([]*Run, error)

	// Close releases resources held by the store.
	Close(ctx context.Context) error
}

// Run is the record of one grading pass.
type Run struct {
	ID         string         `json:"id" bson:"_id"`
	Label      string         `json:"label,omitempty" bson:"label,omitempty"`
	Input      string         `json:"input,omitempty" bson:"input,omitempty"`
	StartedAt  time.Time      `json:"started_at" bson:"started_at"`
	Duration   time.Duration  `json:"duration" bson:"duration"`
	Accepted   int            `json:"accepted" bson:"accepted"`
	Rejected   int            `json:"rejected" bson:"rejected"`
	Failed     int            `json:"failed" bson:"failed"`
	Reasons    map[string]int `json:"reasons" bson:"reasons"`
	Cases      []CaseResult   `json:"cases" bson:"cases"`
	StoppedAt  int            `json:"stopped_at,omitempty" bson:"stopped_at,omitempty"`
	StopReason string         `json:"stop_reason,omitempty" bson:"stop_reason,omitempty"`
}

// CaseResult is the outcome of one case in a run. Reason is empty and
// Error set when the case could not be graded.
type CaseResult struct {
	Line     int           `json:"line" bson:"line"`
	Input    string        `json:"input" bson:"input"`
	Output   string        `json:"output" bson:"output"`
	Optimal  string        `json:"optimal" bson:"optimal"`
	Reason   string        `json:"reason,omitempty" bson:"reason,omitempty"`
	Message  string        `json:"message" bson:"message"`
	Error    string        `json:"error,omitempty" bson:"error,omitempty"`
	Duration time.Duration `json:"duration" bson:"duration"`
}

// Total returns the number of cases in the run.
func (r *Run) Total() int { return len(r.Cases) }

// Passed reports whether every case in the run was accepted and the input
// was read to the end.
func (r *Run) Passed() bool {
	return r.StopReason == "" && r.Failed == 0 && r.Rejected == 0
}
