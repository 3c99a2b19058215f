package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/stackcheck/pkg/stacking"
	"github.com/matzehuels/stackcheck/pkg/store"
)

// Solution is an arrival sequence together with a partition of it.
type Solution struct {
	Arrivals []int              `json:"arrivals"`
	Stacks   stacking.Partition `json:"stacks"`
}

// WriteSolutionsJSON encodes solutions as an indented JSON array.
func WriteSolutionsJSON(w io.Writer, solutions []Solution) error {
	if solutions == nil {
		solutions = []Solution{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(solutions); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadSolutionsJSON decodes a JSON array written by [WriteSolutionsJSON].
// ReadSolutionsJSON does not close r.
func ReadSolutionsJSON(r io.Reader) ([]Solution, error) {
	var out []Solution
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return out, nil
}

// WriteReport encodes a grading run as indented JSON.
func WriteReport(w io.Writer, run *store.Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(run); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
