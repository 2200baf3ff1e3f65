package order

import (
	"fmt"

	"dentallab/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	DRAFT ─> AWAITING_APPROVAL ─> APPROVED ─> IN_PRODUCTION ─> FINALIZED ─> DELIVERED
//	  │              │                │              │
//	  └──────────────┴────────────────┴──────────────┴──────> CANCELLED
//
// A move is valid when the target sits strictly later in the sequence (forward skips are
// allowed), or when the target is CANCELLED and the order is not yet complete. FINALIZED and
// DELIVERED both count as complete; CANCELLED and DELIVERED are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	Draft
	AwaitingApproval
	Approved
	InProduction
	Finalized
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		Draft:            "DRAFT",
		AwaitingApproval: "AWAITING_APPROVAL",
		Approved:         "APPROVED",
		InProduction:     "IN_PRODUCTION",
		Finalized:        "FINALIZED",
		Delivered:        "DELIVERED",
		Cancelled:        "CANCELLED",
	}
}

// getStatusPositions orders the production sequence. CANCELLED has no position.
func getStatusPositions() map[Status]int {
	//nolint:exhaustive // Unknown and Cancelled sit outside the sequence
	return map[Status]int{
		Draft:            1,
		AwaitingApproval: 2,
		Approved:         3,
		InProduction:     4,
		Finalized:        5,
		Delivered:        6,
	}
}

// Statuses lists the valid statuses in sequence order, CANCELLED last.
func Statuses() []Status {
	return []Status{Draft, AwaitingApproval, Approved, InProduction, Finalized, Delivered, Cancelled}
}

// ParseStatus matches s exactly. An unrecognised name is reported as an invalid transition
// target, never matched loosely.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewInvalidTransitionError("order", "any state", fmt.Sprintf("%q", s))
}

// Validate checks if the Status value is one of the declared states.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsComplete reports whether production work is done (FINALIZED or DELIVERED).
func (s Status) IsComplete() bool {
	return s == Finalized || s == Delivered
}

// IsTerminal reports whether no further transition exists.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsClosed reports whether the order no longer accepts production edits such as new stages,
// price changes or schedule changes.
func (s Status) IsClosed() bool {
	return s.IsComplete() || s == Cancelled
}

// RequiresChargedValue reports whether entering s needs a charged value on the order.
func (s Status) RequiresChargedValue() bool {
	pos, ok := getStatusPositions()[s]
	return ok && pos >= getStatusPositions()[Approved]
}

// CanTransitionTo validates a move from s to target. The same-state case is accepted here;
// callers treat it as a no-op.
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return errs.NewInvalidTransitionError("order", s.String(), target.String())
	}
	if target == s {
		return nil
	}
	if s.IsTerminal() {
		return errs.NewInvalidTransitionError("order", s.String(), target.String())
	}
	if target == Cancelled {
		if s.IsComplete() {
			return errs.NewInvalidTransitionError("order", s.String(), target.String())
		}
		return nil
	}

	positions := getStatusPositions()
	if positions[target] <= positions[s] {
		return errs.NewInvalidTransitionError("order", s.String(), target.String())
	}
	return nil
}

// NextStatuses lists every status reachable from s in one move, in sequence order.
func (s Status) NextStatuses() []Status {
	next := make([]Status, 0, len(Statuses()))
	for _, target := range Statuses() {
		if target != s && s.CanTransitionTo(target) == nil {
			next = append(next, target)
		}
	}
	return next
}
