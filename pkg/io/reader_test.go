package io

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	serrors "github.com/matzehuels/stackcheck/pkg/errors"
	"github.com/matzehuels/stackcheck/pkg/stacking"
	"github.com/matzehuels/stackcheck/pkg/store"
)

func TestCaseReader(t *testing.T) {
	input := "3,1,2\n1,2,3\n\n"
	output := "2 3,1 2\n3 1 2 3\n0\n"

	r := NewCaseReader(strings.NewReader(input), strings.NewReader(output))

	c, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if c.Line != 1 || c.Input != "3,1,2" || c.Output != "2 3,1 2" {
		t.Errorf("case 1 = line %d %q %q", c.Line, c.Input, c.Output)
	}
	if c.Reported != 2 || !c.Candidate.Equal(stacking.Partition{{3, 1}, {2}}) {
		t.Errorf("case 1 candidate = %d %v", c.Reported, c.Candidate)
	}

	c, err = r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if c.Line != 2 || len(c.Candidate) != 3 {
		t.Errorf("case 2 = line %d %v", c.Line, c.Candidate)
	}

	c, err = r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if len(c.Arrivals) != 0 || c.Reported != 0 {
		t.Errorf("case 3 = %v %d", c.Arrivals, c.Reported)
	}

	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next after last line = %v, want io.EOF", err)
	}
}

func TestCaseReaderMissingCandidate(t *testing.T) {
	r := NewCaseReader(strings.NewReader("3,1,2\n1,2\n"), strings.NewReader("2 3,1 2\n"))

	if _, err := r.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	_, err := r.Next()
	if !serrors.Is(err, serrors.ErrCodeInvalidInput) {
		t.Fatalf("missing candidate: got %v, want INVALID_INPUT", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the line: %v", err)
	}
}

func TestCaseReaderMalformed(t *testing.T) {
	r := NewCaseReader(strings.NewReader("3,x\n"), strings.NewReader("1 3\n"))
	if _, err := r.Next(); !serrors.Is(err, serrors.ErrCodeInvalidInput) {
		t.Errorf("malformed arrivals: got %v", err)
	}

	r = NewCaseReader(strings.NewReader("3\n"), strings.NewReader("one 3\n"))
	if _, err := r.Next(); !serrors.Is(err, serrors.ErrCodeInvalidInput) {
		t.Errorf("malformed candidate: got %v", err)
	}
}

func TestArrivalReader(t *testing.T) {
	r := NewArrivalReader(strings.NewReader("1,2\n5,5,5"))

	var got [][]int
	for {
		ids, _, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		got = append(got, ids)
	}
	if len(got) != 2 || len(got[1]) != 3 {
		t.Errorf("read %v", got)
	}
	if r.Line() != 2 {
		t.Errorf("Line() = %d, want 2", r.Line())
	}
}

func TestSolutionsJSONRoundTrip(t *testing.T) {
	in := []Solution{
		{Arrivals: []int{3, 1, 2}, Stacks: stacking.Partition{{3, 1}, {2}}},
		{Arrivals: []int{}, Stacks: stacking.Partition{}},
	}

	var buf bytes.Buffer
	if err := WriteSolutionsJSON(&buf, in); err != nil {
		t.Fatalf("WriteSolutionsJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"stacks"`) {
		t.Errorf("missing stacks key: %s", buf.String())
	}

	out, err := ReadSolutionsJSON(&buf)
	if err != nil {
		t.Fatalf("ReadSolutionsJSON: %v", err)
	}
	if len(out) != 2 || !out[0].Stacks.Equal(in[0].Stacks) {
		t.Errorf("round trip = %+v", out)
	}
}

func TestSolutionCaseReader(t *testing.T) {
	solutions := []Solution{
		{Arrivals: []int{3, 1, 2}, Stacks: stacking.Partition{{3, 1}, {2}}},
		{Arrivals: []int{5, 5}, Stacks: stacking.Partition{{5, 5}}},
	}
	r := NewSolutionCaseReader(strings.NewReader("3,1,2\n5,5\n1\n"), solutions)

	c, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if c.Reported != 2 || c.Output != "2 3,1 2" {
		t.Errorf("case 1 = %d %q", c.Reported, c.Output)
	}
	if _, err := r.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if _, err := r.Next(); !serrors.Is(err, serrors.ErrCodeInvalidInput) {
		t.Errorf("missing solution: got %v, want INVALID_INPUT", err)
	}
}

func TestSolutionCaseReaderMismatch(t *testing.T) {
	solutions := []Solution{{Arrivals: []int{1, 2}, Stacks: stacking.Partition{{1}, {2}}}}
	r := NewSolutionCaseReader(strings.NewReader("2,1\n"), solutions)
	_, err := r.Next()
	if !serrors.Is(err, serrors.ErrCodeInvalidInput) {
		t.Fatalf("got %v, want INVALID_INPUT", err)
	}
	if !strings.Contains(err.Error(), "1,2") {
		t.Errorf("error should show the solution's arrivals: %v", err)
	}
}

func TestReadSolutionsJSONInvalid(t *testing.T) {
	if _, err := ReadSolutionsJSON(strings.NewReader("{")); err == nil {
		t.Error("expected decode error")
	}
}

func TestWriteReport(t *testing.T) {
	run := &store.Run{
		ID:       "r1",
		Accepted: 1,
		Reasons:  map[string]int{"accepted": 1},
		Cases:    []store.CaseResult{{Line: 1, Input: "3,1,2", Output: "2 3,1 2", Reason: "accepted"}},
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, run); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	for _, want := range []string{`"id": "r1"`, `"accepted": 1`, `"input": "3,1,2"`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("report missing %s:\n%s", want, buf.String())
		}
	}
}
