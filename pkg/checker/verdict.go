package checker

import "fmt"

// Reason identifies which gate a candidate failed.
type Reason string

// Verdict reasons. ReasonAccepted means every gate passed.
const (
	ReasonAccepted       Reason = "accepted"
	ReasonStackCount     Reason = "stack_count_mismatch"
	ReasonAboveOptimal   Reason = "above_optimal"
	ReasonBelowOptimal   Reason = "below_optimal"
	ReasonContainerCount Reason = "container_count_mismatch"
	ReasonOrder          Reason = "invalid_order"
	ReasonInfeasible     Reason = "not_constructible"
)

// Reasons lists every reason in gate order.
var Reasons = []Reason{
	ReasonAccepted,
	ReasonStackCount,
	ReasonAboveOptimal,
	ReasonBelowOptimal,
	ReasonContainerCount,
	ReasonOrder,
	ReasonInfeasible,
}

// Verdict is the outcome of grading one candidate. The count fields are
// filled as far as the gates got.
type Verdict struct {
	Reason     Reason `json:"reason"`
	Reported   int    `json:"reported"`
	Used       int    `json:"used"`
	Optimal    int    `json:"optimal"`
	Containers int    `json:"containers"`
	Arrivals   int    `json:"arrivals"`
	// Stack is the index of the first stack that is not non-increasing,
	// or -1.
	Stack int `json:"stack"`
}

// Accepted reports whether the candidate passed every gate.
func (v Verdict) Accepted() bool { return v.Reason == ReasonAccepted }

// Message returns the one-line explanation shown to the submitter.
func (v Verdict) Message() string {
	switch v.Reason {
	case ReasonAccepted:
		return "Accepted"
	case ReasonStackCount:
		return fmt.Sprintf("Rejected: reported stack count (%d) and used stack count (%d) do not match", v.Reported, v.Used)
	case ReasonAboveOptimal:
		return fmt.Sprintf("Rejected: %d stacks are used, but the optimal solution requires only %d", v.Reported, v.Optimal)
	case ReasonBelowOptimal:
		return fmt.Sprintf("Rejected: %d stacks are used, although %d are necessary", v.Reported, v.Optimal)
	case ReasonContainerCount:
		return fmt.Sprintf("Rejected: the number of containers in the stacks (%d) doesn't match the number of containers in the input (%d)", v.Containers, v.Arrivals)
	case ReasonOrder:
		return "Rejected: the given solution does not allow loading of ships in order of arrival"
	case ReasonInfeasible:
		return "Rejected: it is not possible to build the stacks in the given way"
	}
	return fmt.Sprintf("Rejected: %s", v.Reason)
}
