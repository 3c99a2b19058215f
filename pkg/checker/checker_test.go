package checker

import (
	"context"
	"testing"
	"time"

	serrors "github.com/matzehuels/stackcheck/pkg/errors"
	"github.com/matzehuels/stackcheck/pkg/stacking"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		c         Case
		optimal   int
		want      Reason
		wantStack int
	}{
		{
			name:      "accepted",
			c:         Case{Arrivals: []int{3, 1, 2}, Reported: 2, Candidate: stacking.Partition{{3, 1}, {2}}},
			optimal:   2,
			want:      ReasonAccepted,
			wantStack: -1,
		},
		{
			name:      "reported differs from used",
			c:         Case{Arrivals: []int{3, 1, 2}, Reported: 3, Candidate: stacking.Partition{{3, 1}, {2}}},
			optimal:   2,
			want:      ReasonStackCount,
			wantStack: -1,
		},
		{
			name:      "more stacks than optimal",
			c:         Case{Arrivals: []int{3, 1, 2}, Reported: 3, Candidate: stacking.Partition{{3}, {1}, {2}}},
			optimal:   2,
			want:      ReasonAboveOptimal,
			wantStack: -1,
		},
		{
			name:      "fewer stacks than optimal",
			c:         Case{Arrivals: []int{1, 2, 3}, Reported: 2, Candidate: stacking.Partition{{1}, {2, 3}}},
			optimal:   3,
			want:      ReasonBelowOptimal,
			wantStack: -1,
		},
		{
			name:      "container count",
			c:         Case{Arrivals: []int{3, 1, 2}, Reported: 2, Candidate: stacking.Partition{{3, 1}, {2, 2}}},
			optimal:   2,
			want:      ReasonContainerCount,
			wantStack: -1,
		},
		{
			name:      "increasing stack",
			c:         Case{Arrivals: []int{3, 1, 2}, Reported: 2, Candidate: stacking.Partition{{3}, {1, 2}}},
			optimal:   2,
			want:      ReasonOrder,
			wantStack: 1,
		},
		{
			name:      "empty",
			c:         Case{Reported: 0, Candidate: stacking.Partition{}},
			optimal:   0,
			want:      ReasonAccepted,
			wantStack: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.c, tt.optimal)
			if got.Reason != tt.want {
				t.Errorf("Reason = %v, want %v", got.Reason, tt.want)
			}
			if got.Stack != tt.wantStack {
				t.Errorf("Stack = %d, want %d", got.Stack, tt.wantStack)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		c    Case
		want Reason
	}{
		{
			name: "accepted",
			c:    Case{Arrivals: []int{3, 1, 2}, Reported: 2, Candidate: stacking.Partition{{3, 1}, {2}}},
			want: ReasonAccepted,
		},
		{
			name: "not constructible",
			c:    Case{Arrivals: []int{3, 1, 2}, Reported: 2, Candidate: stacking.Partition{{2, 1}, {3}}},
			want: ReasonInfeasible,
		},
		{
			name: "structural failure skips search",
			c:    Case{Arrivals: []int{1, 2, 3}, Reported: 2, Candidate: stacking.Partition{{1}, {3, 2}}},
			want: ReasonBelowOptimal,
		},
		{
			name: "equal ids",
			c:    Case{Arrivals: []int{5, 5, 5}, Reported: 1, Candidate: stacking.Partition{{5, 5, 5}}},
			want: ReasonAccepted,
		},
	}

	ch := New(time.Second)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.c.Candidate.Clone()
			optimal := len(stacking.Solve(tt.c.Arrivals))

			got, err := ch.Check(context.Background(), tt.c, optimal)
			if err != nil {
				t.Fatalf("Check error: %v", err)
			}
			if got.Reason != tt.want {
				t.Errorf("Reason = %v, want %v", got.Reason, tt.want)
			}
			if !tt.c.Candidate.Equal(before) {
				t.Errorf("candidate modified: %v", tt.c.Candidate)
			}
		})
	}
}

func TestCheckCancelledIsNotAVerdict(t *testing.T) {
	n := 8192
	arrivals := make([]int, n)
	stack := make(stacking.Stack, n)
	for i := range arrivals {
		arrivals[i] = 1
		stack[i] = 1
	}
	c := Case{Arrivals: arrivals, Reported: 1, Candidate: stacking.Partition{stack}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Checker{}).Check(ctx, c, 1)
	if !serrors.Is(err, serrors.ErrCodeInternal) {
		t.Errorf("cancelled check: got %v, want INTERNAL_ERROR", err)
	}

	deadline, stop := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer stop()
	_, err = (&Checker{}).Check(deadline, c, 1)
	if !serrors.Is(err, serrors.ErrCodeTimeout) {
		t.Errorf("expired check: got %v, want TIMEOUT", err)
	}
}

func TestVerdictMessage(t *testing.T) {
	tests := []struct {
		v    Verdict
		want string
	}{
		{Verdict{Reason: ReasonAccepted}, "Accepted"},
		{Verdict{Reason: ReasonStackCount, Reported: 3, Used: 2}, "Rejected: reported stack count (3) and used stack count (2) do not match"},
		{Verdict{Reason: ReasonAboveOptimal, Reported: 3, Optimal: 2}, "Rejected: 3 stacks are used, but the optimal solution requires only 2"},
		{Verdict{Reason: ReasonBelowOptimal, Reported: 1, Optimal: 2}, "Rejected: 1 stacks are used, although 2 are necessary"},
		{Verdict{Reason: ReasonContainerCount, Containers: 4, Arrivals: 3}, "Rejected: the number of containers in the stacks (4) doesn't match the number of containers in the input (3)"},
		{Verdict{Reason: ReasonOrder}, "Rejected: the given solution does not allow loading of ships in order of arrival"},
		{Verdict{Reason: ReasonInfeasible}, "Rejected: it is not possible to build the stacks in the given way"},
	}

	for _, tt := range tests {
		if got := tt.v.Message(); got != tt.want {
			t.Errorf("Message() = %q, want %q", got, tt.want)
		}
	}
}
