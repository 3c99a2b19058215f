package io

import (
	"bufio"
	"io"
	"slices"

	"github.com/matzehuels/stackcheck/pkg/checker"
	serrors "github.com/matzehuels/stackcheck/pkg/errors"
)

// maxLineSize bounds a single input line.
const maxLineSize = 64 << 20

// Case is one arrival line paired with its candidate line.
type Case struct {
	checker.Case

	Line   int    // 1-based line number in both streams
	Input  string // arrival line as read, without terminator
	Output string // candidate line as read, without terminator
}

// ArrivalReader reads arrival lines one at a time.
type ArrivalReader struct {
	sc   *bufio.Scanner
	line int
}

// NewArrivalReader returns a reader over arrival lines in r.
func NewArrivalReader(r io.Reader) *ArrivalReader {
	return &ArrivalReader{sc: newScanner(r)}
}

// Next returns the next arrival sequence and its raw text. It returns
// io.EOF after the last line.
func (r *ArrivalReader) Next() ([]int, string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return nil, "", serrors.Wrap(serrors.ErrCodeInvalidInput, err, "read arrivals line %d", r.line+1)
		}
		return nil, "", io.EOF
	}
	r.line++
	text := r.sc.Text()
	ids, err := ParseArrivals(text)
	if err != nil {
		return nil, text, serrors.Wrap(serrors.ErrCodeInvalidInput, err, "arrivals line %d", r.line)
	}
	return ids, text, nil
}

// Line returns the number of lines consumed so far.
func (r *ArrivalReader) Line() int { return r.line }

// CaseReader pairs arrival lines with candidate lines.
type CaseReader struct {
	arrivals   *ArrivalReader
	candidates *bufio.Scanner
}

// NewCaseReader returns a reader that takes arrival lines from input and
// candidate lines from candidates.
func NewCaseReader(input, candidates io.Reader) *CaseReader {
	return &CaseReader{
		arrivals:   NewArrivalReader(input),
		candidates: newScanner(candidates),
	}
}

// Next returns the next case. It returns io.EOF when the arrival input is
// exhausted. A candidate stream that ends early, or a line that does not
// parse, yields an INVALID_INPUT error; callers treat it as the end of the
// run.
func (r *CaseReader) Next() (*Case, error) {
	ids, input, err := r.arrivals.Next()
	if err != nil {
		return nil, err
	}
	line := r.arrivals.Line()

	if !r.candidates.Scan() {
		if err := r.candidates.Err(); err != nil {
			return nil, serrors.Wrap(serrors.ErrCodeInvalidInput, err, "read candidate line %d", line)
		}
		return nil, serrors.New(serrors.ErrCodeInvalidInput, "missing candidate line %d", line)
	}
	output := r.candidates.Text()

	reported, stacks, err := ParseCandidate(output)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrCodeInvalidInput, err, "candidate line %d", line)
	}

	return &Case{
		Case: checker.Case{
			Arrivals:  ids,
			Reported:  reported,
			Candidate: stacks,
		},
		Line:   line,
		Input:  input,
		Output: output,
	}, nil
}

// SolutionCaseReader pairs arrival lines with solutions decoded by
// [ReadSolutionsJSON], such as the output of "stackcheck solve --json".
// Each solution reports its own stack count.
type SolutionCaseReader struct {
	arrivals  *ArrivalReader
	solutions []Solution
}

// NewSolutionCaseReader returns a reader that takes arrival lines from
// input and candidates from solutions, in order.
func NewSolutionCaseReader(input io.Reader, solutions []Solution) *SolutionCaseReader {
	return &SolutionCaseReader{arrivals: NewArrivalReader(input), solutions: solutions}
}

// Next returns the next case. A solution whose arrivals differ from the
// input line, or a missing solution, yields an INVALID_INPUT error.
func (r *SolutionCaseReader) Next() (*Case, error) {
	ids, input, err := r.arrivals.Next()
	if err != nil {
		return nil, err
	}
	line := r.arrivals.Line()

	if line > len(r.solutions) {
		return nil, serrors.New(serrors.ErrCodeInvalidInput, "missing solution %d", line)
	}
	sol := r.solutions[line-1]
	if !slices.Equal(sol.Arrivals, ids) {
		return nil, serrors.New(serrors.ErrCodeInvalidInput, "solution %d is for %s, not %s",
			line, FormatArrivals(sol.Arrivals), input)
	}

	return &Case{
		Case: checker.Case{
			Arrivals:  ids,
			Reported:  len(sol.Stacks),
			Candidate: sol.Stacks,
		},
		Line:   line,
		Input:  input,
		Output: FormatPartition(sol.Stacks),
	}, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}
