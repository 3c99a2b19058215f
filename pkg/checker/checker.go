package checker

import (
	"context"
	"time"

	serrors "github.com/matzehuels/stackcheck/pkg/errors"
	"github.com/matzehuels/stackcheck/pkg/stacking"
)

// Case is one graded submission: an arrival sequence and the candidate
// produced for it, including the stack count the candidate reported.
type Case struct {
	Arrivals  []int
	Reported  int
	Candidate stacking.Partition
}

// Validate runs gates one to four against the optimal stack count. It
// returns a verdict with ReasonAccepted if all four pass, which means the
// candidate still has to go through the feasibility search.
func Validate(c Case, optimal int) Verdict {
	v := Verdict{
		Reported: c.Reported,
		Used:     len(c.Candidate),
		Optimal:  optimal,
		Arrivals: len(c.Arrivals),
		Stack:    -1,
	}

	switch {
	case v.Reported != v.Used:
		v.Reason = ReasonStackCount
		return v
	case v.Reported > optimal:
		v.Reason = ReasonAboveOptimal
		return v
	case v.Reported < optimal:
		v.Reason = ReasonBelowOptimal
		return v
	}

	v.Containers = c.Candidate.Size()
	if v.Containers != v.Arrivals {
		v.Reason = ReasonContainerCount
		return v
	}

	if ok, bad := c.Candidate.Valid(); !ok {
		v.Reason = ReasonOrder
		v.Stack = bad
		return v
	}

	v.Reason = ReasonAccepted
	return v
}

// Checker grades cases. The zero value memoizes nothing and runs without
// a deadline.
type Checker struct {
	// Verifier configures the feasibility search.
	Verifier stacking.Verifier

	// Timeout bounds the feasibility search of a single case. Zero means
	// no limit beyond the caller's context.
	Timeout time.Duration
}

// New returns a Checker with memoization enabled and the given per-case
// timeout.
func New(timeout time.Duration) *Checker {
	return &Checker{Verifier: stacking.Verifier{Memoize: true}, Timeout: timeout}
}

// Check grades c against the optimal stack count. The candidate and the
// arrivals are left untouched.
//
// When the search is cut short the case has no verdict: Check returns an
// error coded TIMEOUT for an expired deadline and INTERNAL_ERROR for any
// other cancellation.
func (ch *Checker) Check(ctx context.Context, c Case, optimal int) (Verdict, error) {
	v := Validate(c, optimal)
	if !v.Accepted() {
		return v, nil
	}

	if ch.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ch.Timeout)
		defer cancel()
	}

	ok, err := ch.Verifier.FeasibleContext(ctx, c.Arrivals, c.Candidate)
	if err != nil {
		return Verdict{}, serrors.FromContext(err, "feasibility search did not finish")
	}
	if !ok {
		v.Reason = ReasonInfeasible
	}
	return v, nil
}
