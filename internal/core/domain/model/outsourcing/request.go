package outsourcing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not created through
	// NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")
)

const (
	maxDescriptionLength = 500
	maxRationaleLength   = 2000
	maxNoteLength        = 1000

	aggregateType = "outsourcing_request"

	EventRequested = "outsourcing.requested"
	EventResponded = "outsourcing.responded"
	EventStarted   = "outsourcing.started"
	EventCompleted = "outsourcing.completed"
	EventCancelled = "outsourcing.cancelled"
)

// Request is a proposal by an order's assigned fulfiller to have another fulfiller execute the
// work for a percentage of the order's charged value.
//
// Request follows these invariants:
//   - The requesting and executing fulfillers differ
//   - The percentage lies in (0, 100]
//   - Each transition timestamp is present exactly when the request has passed through that step
//
// Eligibility of the delegate and the state of the parent order are checked by the caller
// before NewRequest; the request itself only guards its own lifecycle.
type Request struct {
	kernel.EventRecorder

	id                    kernel.ID
	orderID               kernel.ID
	requestingFulfillerID kernel.ID
	executingFulfillerID  kernel.ID
	percentage            kernel.Percentage
	kind                  Kind
	serviceDescription    string
	rationale             string
	closingNote           string
	status                Status
	createdAt             time.Time
	respondedAt           *time.Time
	startedAt             *time.Time
	completedAt           *time.Time
	cancelledAt           *time.Time

	isConstructed bool
}

type NewRequestParams struct {
	ID                    kernel.ID
	OrderID               kernel.ID
	RequestingFulfillerID kernel.ID
	ExecutingFulfillerID  kernel.ID
	Percentage            kernel.Percentage
	Kind                  Kind
	ServiceDescription    string
	Rationale             string
}

// NewRequest opens a request in REQUESTED status.
func NewRequest(p NewRequestParams, now time.Time) (*Request, error) {
	r, err := newRequest(p, now)
	if err != nil {
		return nil, err
	}

	r.Record(kernel.NewDomainEvent(EventRequested, aggregateType, r.id, now, map[string]any{
		"orderId":               r.orderID.Int64(),
		"requestingFulfillerId": r.requestingFulfillerID.Int64(),
		"executingFulfillerId":  r.executingFulfillerID.Int64(),
		"percentage":            r.percentage.String(),
		"kind":                  r.kind.String(),
	}))
	return r, nil
}

func newRequest(p NewRequestParams, now time.Time) (*Request, error) {
	r := &Request{
		status:        Requested,
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(p.ID),
		r.setOrderID(p.OrderID),
		r.setFulfillers(p.RequestingFulfillerID, p.ExecutingFulfillerID),
		r.setPercentage(p.Percentage),
		r.setKind(p.Kind),
		r.setServiceDescription(p.ServiceDescription),
		r.setRationale(p.Rationale),
	); err != nil {
		return nil, err
	}
	return r, nil
}

type RestoreRequestParams struct {
	NewRequestParams

	Status      Status
	ClosingNote string
	CreatedAt   time.Time
	RespondedAt *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}

// RestoreRequest rebuilds a request from persisted state.
func RestoreRequest(p RestoreRequestParams) (*Request, error) {
	r, err := newRequest(p.NewRequestParams, p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err = p.Status.Validate(); err != nil {
		return nil, err
	}

	started := p.Status == InProgress || p.Status == Completed
	if err = errors.Join(
		stampMatches("started at", started, p.StartedAt),
		stampMatches("completed at", p.Status == Completed, p.CompletedAt),
		stampMatches("cancelled at", p.Status == Cancelled, p.CancelledAt),
	); err != nil {
		return nil, err
	}
	if (started || p.Status == Accepted || p.Status == Refused) && p.RespondedAt == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("responded at",
			fmt.Errorf("request %s is %s", p.ID, p.Status))
	}
	if err = r.setClosingNote(p.ClosingNote); err != nil {
		return nil, err
	}

	r.status = p.Status
	r.respondedAt = p.RespondedAt
	r.startedAt = p.StartedAt
	r.completedAt = p.CompletedAt
	r.cancelledAt = p.CancelledAt
	return r, nil
}

func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

func (r *Request) ID() kernel.ID                    { return r.id }
func (r *Request) OrderID() kernel.ID               { return r.orderID }
func (r *Request) RequestingFulfillerID() kernel.ID { return r.requestingFulfillerID }
func (r *Request) ExecutingFulfillerID() kernel.ID  { return r.executingFulfillerID }
func (r *Request) Percentage() kernel.Percentage    { return r.percentage }
func (r *Request) Kind() Kind                       { return r.kind }
func (r *Request) ServiceDescription() string       { return r.serviceDescription }
func (r *Request) Rationale() string                { return r.rationale }
func (r *Request) ClosingNote() string              { return r.closingNote }
func (r *Request) Status() Status                   { return r.status }
func (r *Request) CreatedAt() time.Time             { return r.createdAt }
func (r *Request) RespondedAt() *time.Time          { return r.respondedAt }
func (r *Request) StartedAt() *time.Time            { return r.startedAt }
func (r *Request) CompletedAt() *time.Time          { return r.completedAt }
func (r *Request) CancelledAt() *time.Time          { return r.cancelledAt }

func (r *Request) IsActive() bool {
	return r.status.IsActive()
}

// Settlement is the amount owed to the executing fulfiller for the given charged value.
// It is computed from whatever value the order carries at the time of the call.
func (r *Request) Settlement(chargedValue kernel.Money) kernel.Money {
	return chargedValue.Share(r.percentage)
}

// Respond accepts or refuses the request. Only the executing fulfiller may respond.
// A refusal note is kept as the closing note.
func (r *Request) Respond(actor kernel.Actor, accept bool, note string, now time.Time) error {
	if err := r.authorizeExecutor(actor, "respond to"); err != nil {
		return err
	}
	target := Refused
	if accept {
		target = Accepted
	}
	if err := r.status.CanTransitionTo(target); err != nil {
		return err
	}
	if !accept {
		if err := r.setClosingNote(note); err != nil {
			return err
		}
	}

	r.status = target
	r.respondedAt = stamp(now)

	r.Record(kernel.NewDomainEvent(EventResponded, aggregateType, r.id, now, map[string]any{
		"orderId":  r.orderID.Int64(),
		"accepted": accept,
		"status":   r.status.String(),
	}))
	return nil
}

// Start marks accepted work as underway. Only the executing fulfiller may start.
func (r *Request) Start(actor kernel.Actor, now time.Time) error {
	if err := r.authorizeExecutor(actor, "start"); err != nil {
		return err
	}
	if err := r.status.CanTransitionTo(InProgress); err != nil {
		return err
	}

	r.status = InProgress
	r.startedAt = stamp(now)

	r.Record(kernel.NewDomainEvent(EventStarted, aggregateType, r.id, now, map[string]any{
		"orderId": r.orderID.Int64(),
	}))
	return nil
}

// Complete closes the delegated work. The parent order is not touched; finalizing it stays an
// explicit call by the requesting fulfiller.
func (r *Request) Complete(actor kernel.Actor, now time.Time) error {
	if err := r.authorizeExecutor(actor, "complete"); err != nil {
		return err
	}
	if err := r.status.CanTransitionTo(Completed); err != nil {
		return err
	}

	r.status = Completed
	r.completedAt = stamp(now)

	r.Record(kernel.NewDomainEvent(EventCompleted, aggregateType, r.id, now, map[string]any{
		"orderId":    r.orderID.Int64(),
		"percentage": r.percentage.String(),
	}))
	return nil
}

// Cancel withdraws the request while it is REQUESTED or ACCEPTED. Either fulfiller may cancel.
func (r *Request) Cancel(actor kernel.Actor, reason string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsFulfiller(r.requestingFulfillerID) && !actor.IsFulfiller(r.executingFulfillerID) {
		return errs.NewUnauthorizedError(actor, fmt.Sprintf("cancel outsourcing request %s", r.id))
	}
	if err := r.status.CanTransitionTo(Cancelled); err != nil {
		return err
	}
	if err := r.setClosingNote(reason); err != nil {
		return err
	}

	r.status = Cancelled
	r.cancelledAt = stamp(now)

	r.Record(kernel.NewDomainEvent(EventCancelled, aggregateType, r.id, now, map[string]any{
		"orderId": r.orderID.Int64(),
		"actor":   actor.String(),
	}))
	return nil
}

func (r *Request) authorizeExecutor(actor kernel.Actor, action string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsFulfiller(r.executingFulfillerID) {
		return errs.NewUnauthorizedError(actor, fmt.Sprintf("%s outsourcing request %s", action, r.id))
	}
	return nil
}

func (r *Request) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.orderID = id
	return nil
}

func (r *Request) setFulfillers(requesting, executing kernel.ID) error {
	if err := errors.Join(requesting.Validate(), executing.Validate()); err != nil {
		return err
	}
	if requesting.IsEqual(executing) {
		return errs.NewValueIsInvalidErrorWithCause("executing fulfiller",
			fmt.Errorf("fulfiller %s cannot delegate to itself", requesting))
	}
	r.requestingFulfillerID = requesting
	r.executingFulfillerID = executing
	return nil
}

func (r *Request) setPercentage(p kernel.Percentage) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.percentage = p
	return nil
}

func (r *Request) setKind(k Kind) error {
	if k == "" {
		k = KindPartial
	}
	if err := k.Validate(); err != nil {
		return err
	}
	r.kind = k
	return nil
}

func (r *Request) setServiceDescription(s string) error {
	s = strings.TrimSpace(s)
	if len(s) > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("service description length", len(s), 0, maxDescriptionLength)
	}
	r.serviceDescription = s
	return nil
}

func (r *Request) setRationale(s string) error {
	s = strings.TrimSpace(s)
	if len(s) > maxRationaleLength {
		return errs.NewValueIsOutOfRangeError("rationale length", len(s), 0, maxRationaleLength)
	}
	r.rationale = s
	return nil
}

func (r *Request) setClosingNote(s string) error {
	s = strings.TrimSpace(s)
	if len(s) > maxNoteLength {
		return errs.NewValueIsOutOfRangeError("closing note length", len(s), 0, maxNoteLength)
	}
	r.closingNote = s
	return nil
}

func stampMatches(field string, want bool, at *time.Time) error {
	if want == (at != nil) {
		return nil
	}
	if want {
		return errs.NewValueIsRequiredError(field)
	}
	return errs.NewValueIsInvalidErrorWithCause(field, errors.New("set for a request that never reached that step"))
}

func stamp(now time.Time) *time.Time {
	t := now.UTC()
	return &t
}
