// Package errs provides the error taxonomy of the lab ordering engine.
//
// Generic value errors:
//   - ValueIsRequiredError: a required value is missing (MissingRequiredField)
//   - ValueIsInvalidError, ValueIsOutOfRangeError: a value breaks a domain rule
//   - ObjectNotFoundError: an identifier matched nothing (NotFound)
//
// Domain errors:
//   - InvalidTransitionError: an order, outsourcing request or stage move the table forbids
//   - UnauthorizedError: the calling actor lacks the role or ownership required
//   - RuleViolationError: InvalidServiceOffering, PolicyMismatch, OutsourcingAlreadyActive
//     and InvalidOrderState
//   - ContentionError: an aggregate lock could not be taken in time; retryable
//
// Every type unwraps to a sentinel so callers classify with errors.Is.
package errs
