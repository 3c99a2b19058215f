// Package pipeline runs arrival sequences and candidate solutions through
// the solver and the checker.
//
// The same [Runner] backs the CLI and the HTTP API, so caching, logging,
// metrics hooks and run persistence behave the same everywhere.
//
// # Stages
//
// Every case goes through two stages:
//
//  1. Solve: compute an optimal partition of the arrivals, or load it from
//     the cache
//  2. Check: grade the candidate against the optimal stack count, running
//     the feasibility search last
//
// A run reads cases from a [CaseSource] until the input ends or a line
// fails to parse, then records the result in a [store.Run] and saves it
// when a store is configured.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	cases := pkgio.NewCaseReader(input, candidates)
//	run, err := runner.Run(ctx, cases, pipeline.Options{Input: "tests.txt"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(run.Accepted, run.Rejected, run.Failed)
//
// Solve a single sequence:
//
//	stacks, err := runner.Solve(ctx, []int{3, 1, 2})
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	serrors "github.com/matzehuels/stackcheck/pkg/errors"
	pkgio "github.com/matzehuels/stackcheck/pkg/io"
	"github.com/matzehuels/stackcheck/pkg/store"
)

const (
	// DefaultTimeout bounds the feasibility search of one case.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxContainers bounds the length of one arrival sequence.
	DefaultMaxContainers = serrors.DefaultMaxContainers
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats is the set of supported report formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// ValidateFormat checks that a report format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return serrors.New(serrors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json)", format)
	}
	return nil
}

// CaseSource yields cases. [pkgio.CaseReader] is the usual implementation.
type CaseSource interface {
	// Next returns the next case, io.EOF at the end, or an INVALID_INPUT
	// error for a line that cannot be read.
	Next() (*pkgio.Case, error)
}

// Options configures a single run.
type Options struct {
	// Label and Input are recorded on the run.
	Label string
	Input string

	// MaxContainers bounds the length of one arrival sequence. Longer
	// cases fail without being graded. Negative disables the limit.
	MaxContainers int

	// Refresh bypasses cached solutions.
	Refresh bool

	// Progress is called after each case.
	Progress func(store.CaseResult)

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger
}

// SetDefaults fills zero fields.
func (o *Options) SetDefaults() {
	if o.MaxContainers == 0 {
		o.MaxContainers = DefaultMaxContainers
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
