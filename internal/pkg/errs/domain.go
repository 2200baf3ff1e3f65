package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition        = errors.New("invalid transition")
	ErrInvalidStageTransition   = errors.New("invalid stage transition")
	ErrUnauthorized             = errors.New("unauthorized")
	ErrInvalidServiceOffering   = errors.New("invalid service offering")
	ErrPolicyMismatch           = errors.New("policy mismatch")
	ErrOutsourcingAlreadyActive = errors.New("outsourcing already active")
	ErrInvalidOrderState        = errors.New("invalid order state")
	ErrContention               = errors.New("resource is busy")
)

// InvalidTransitionError reports a state machine move that the transition table forbids.
// Subject names the machine ("order", "outsourcing request", "stage").
type InvalidTransitionError struct {
	Subject string
	From    string
	To      string

	kind error
}

func NewInvalidTransitionError(subject, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Subject: subject, From: from, To: to, kind: ErrInvalidTransition}
}

func NewInvalidStageTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Subject: "stage", From: from, To: to, kind: ErrInvalidStageTransition}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s", e.kind, e.Subject, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	if e.kind == nil {
		return ErrInvalidTransition
	}
	return e.kind
}

// UnauthorizedError reports an actor lacking the role or ownership an operation requires.
type UnauthorizedError struct {
	Actor  string
	Action string
}

func NewUnauthorizedError(actor fmt.Stringer, action string) *UnauthorizedError {
	return &UnauthorizedError{Actor: actor.String(), Action: action}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: %s may not %s", ErrUnauthorized, e.Actor, e.Action)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// RuleViolationError reports a business rule guarding an aggregate or the catalog.
type RuleViolationError struct {
	Reason string

	kind error
}

func NewInvalidServiceOfferingError(reason string) *RuleViolationError {
	return &RuleViolationError{Reason: reason, kind: ErrInvalidServiceOffering}
}

func NewPolicyMismatchError(reason string) *RuleViolationError {
	return &RuleViolationError{Reason: reason, kind: ErrPolicyMismatch}
}

func NewOutsourcingAlreadyActiveError(orderID any) *RuleViolationError {
	return &RuleViolationError{
		Reason: fmt.Sprintf("order %v already has an active outsourcing request", orderID),
		kind:   ErrOutsourcingAlreadyActive,
	}
}

func NewInvalidOrderStateError(reason string) *RuleViolationError {
	return &RuleViolationError{Reason: reason, kind: ErrInvalidOrderState}
}

func (e *RuleViolationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Unwrap(), e.Reason)
}

func (e *RuleViolationError) Unwrap() error {
	if e.kind == nil {
		return ErrInvalidServiceOffering
	}
	return e.kind
}

// ContentionError reports that an aggregate stayed locked for longer than the allowed wait.
// It is the only error kind a caller is expected to retry.
type ContentionError struct {
	Resource string
	Cause    error
}

func NewContentionError(resource string, cause error) *ContentionError {
	return &ContentionError{Resource: resource, Cause: cause}
}

func (e *ContentionError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrContention, e.Resource), e.Cause)
}

func (e *ContentionError) Unwrap() error {
	return ErrContention
}

// IsRetryable reports whether err is worth retrying unchanged.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrContention)
}
