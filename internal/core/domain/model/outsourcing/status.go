package outsourcing

import (
	"fmt"

	"dentallab/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Requested
	Accepted
	Refused
	InProgress
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Requested:  "REQUESTED",
		Accepted:   "ACCEPTED",
		Refused:    "REFUSED",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// allowed transitions; IN_PROGRESS work cannot be abandoned through cancel
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Requested:  {Accepted, Refused, Cancelled},
		Accepted:   {InProgress, Cancelled},
		InProgress: {Completed},
	}
}

func Statuses() []Status {
	return []Status{Requested, Accepted, Refused, InProgress, Completed, Cancelled}
}

// ActiveStatuses are the statuses that block a new request for the same order.
func ActiveStatuses() []Status {
	return []Status{Requested, Accepted, InProgress}
}

func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewInvalidTransitionError("outsourcing request", "any state", fmt.Sprintf("%q", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("outsourcing status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) IsActive() bool {
	return s == Requested || s == Accepted || s == InProgress
}

func (s Status) IsTerminal() bool {
	return s == Refused || s == Completed || s == Cancelled
}

func (s Status) CanTransitionTo(target Status) error {
	for _, next := range getTransitions()[s] {
		if next == target {
			return nil
		}
	}
	return errs.NewInvalidTransitionError("outsourcing request", s.String(), target.String())
}
