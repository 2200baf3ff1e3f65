package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

const (
	maxDetailsLength = 4000

	aggregateType = "order"

	EventCreated                 = "order.created"
	EventStatusChanged           = "order.status_changed"
	EventStageAdded              = "order.stage_added"
	EventStageAdvanced           = "order.stage_advanced"
	EventChargedValueChanged     = "order.charged_value_changed"
	EventExpectedDeliveryChanged = "order.expected_delivery_changed"
	EventOverdue                 = "order.overdue"
)

// Order is a commissioned piece of prosthetic work linking a requester (a clinic) and an
// assigned fulfiller (a lab). It is the aggregate root for its production stages.
//
// Order follows these invariants:
//   - Status only moves forward in the production sequence, or to CANCELLED before completion
//   - The actual delivery date is set if and only if the status is FINALIZED or DELIVERED
//   - The expected delivery date, once set, is never earlier than the entry date
//   - A charged value is present before the order enters APPROVED or any later state
//   - Stage positions run 1..n in creation order
//
// Every state-changing method takes the calling actor explicitly and rejects the call with
// an Unauthorized error when the actor lacks the required role or ownership. A rejected call
// leaves the order unchanged.
type Order struct {
	kernel.EventRecorder

	id               kernel.ID
	code             Code
	requester        Party
	fulfiller        Party
	serviceType      kernel.ServiceType
	status           Status
	entryDate        time.Time
	expectedDelivery *time.Time
	actualDelivery   *time.Time
	chargedValue     *kernel.Money
	quote            *catalog.Terms
	details          string
	stages           []*Stage
	createdAt        time.Time
	updatedAt        time.Time
	cancelledAt      *time.Time

	isConstructed bool
}

// NewOrderParams carries everything needed to open an order.
// Quote is the catalog snapshot taken at creation and is never re-read.
type NewOrderParams struct {
	ID               kernel.ID
	Code             Code
	Requester        Party
	Fulfiller        Party
	ServiceType      kernel.ServiceType
	EntryDate        time.Time
	ExpectedDelivery *time.Time
	ChargedValue     *kernel.Money
	Quote            *catalog.Terms
	Details          string
	InitialStages    []InitialStage
}

// InitialStage is a stage seeded when the order is opened, e.g. from a service type template.
type InitialStage struct {
	ID   kernel.ID
	Name string
}

// NewOrder opens an order in DRAFT status.
//
// Example:
//
//	o, err := order.NewOrder(order.NewOrderParams{
//	    ID:          id,
//	    Code:        order.NewCode(now),
//	    Requester:   clinic,
//	    Fulfiller:   lab,
//	    ServiceType: kernel.ServiceTypeCrown,
//	    EntryDate:   now,
//	    ChargedValue: &price,
//	}, now)
func NewOrder(p NewOrderParams, now time.Time) (*Order, error) {
	o, err := newOrder(p, now)
	if err != nil {
		return nil, err
	}

	for _, initial := range p.InitialStages {
		stage, stageErr := newStage(initial.ID, o.id, len(o.stages)+1, initial.Name, "", now)
		if stageErr != nil {
			return nil, stageErr
		}
		o.stages = append(o.stages, stage)
	}

	o.Record(kernel.NewDomainEvent(EventCreated, aggregateType, o.id, now, map[string]any{
		"code":         o.code.String(),
		"requesterId":  o.requester.ID().Int64(),
		"fulfillerId":  o.fulfiller.ID().Int64(),
		"serviceType":  o.serviceType.String(),
		"chargedValue": moneyString(o.chargedValue),
		"stages":       len(o.stages),
	}))
	return o, nil
}

func newOrder(p NewOrderParams, now time.Time) (*Order, error) {
	o := &Order{
		status:        Draft,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		stages:        make([]*Stage, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setCode(p.Code),
		o.setParties(p.Requester, p.Fulfiller),
		o.setServiceType(p.ServiceType),
		o.setEntryDate(p.EntryDate),
		o.setChargedValue(p.ChargedValue),
		o.setQuote(p.Quote),
		o.setDetails(p.Details),
	); err != nil {
		return nil, err
	}

	if p.ExpectedDelivery != nil {
		if err := o.setExpectedDelivery(*p.ExpectedDelivery); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// RestoreOrderParams carries persisted order state.
type RestoreOrderParams struct {
	NewOrderParams

	Status         Status
	ActualDelivery *time.Time
	CancelledAt    *time.Time
	Stages         []*Stage
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RestoreOrder rebuilds an order from persistence and re-checks every invariant.
// InitialStages is ignored; persisted stages come in Stages.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o, err := newOrder(p.NewOrderParams, p.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err = p.Status.Validate(); err != nil {
		return nil, err
	}
	if p.Status.IsComplete() != (p.ActualDelivery != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("actual delivery",
			fmt.Errorf("order %s is %s but actual delivery presence is %t", p.ID, p.Status, p.ActualDelivery != nil))
	}
	if p.Status.RequiresChargedValue() && p.ChargedValue == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("charged value",
			fmt.Errorf("order %s is %s", p.ID, p.Status))
	}

	stages := slices.Clone(p.Stages)
	slices.SortFunc(stages, func(a, b *Stage) int { return a.Position() - b.Position() })
	for i, s := range stages {
		if err = s.Validate(); err != nil {
			return nil, err
		}
		if !s.OrderID().IsEqual(o.id) || s.Position() != i+1 {
			return nil, errs.NewValueIsInvalidErrorWithCause("stages",
				fmt.Errorf("stage %s has position %d in order %s", s.ID(), s.Position(), s.OrderID()))
		}
	}

	o.status = p.Status
	o.actualDelivery = p.ActualDelivery
	o.cancelledAt = p.CancelledAt
	o.stages = stages
	o.updatedAt = p.UpdatedAt.UTC()
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID                   { return o.id }
func (o *Order) Code() Code                      { return o.code }
func (o *Order) Requester() Party                { return o.requester }
func (o *Order) Fulfiller() Party                { return o.fulfiller }
func (o *Order) ServiceType() kernel.ServiceType { return o.serviceType }
func (o *Order) Status() Status                  { return o.status }
func (o *Order) EntryDate() time.Time            { return o.entryDate }
func (o *Order) ExpectedDelivery() *time.Time    { return o.expectedDelivery }
func (o *Order) ActualDelivery() *time.Time      { return o.actualDelivery }
func (o *Order) ChargedValue() *kernel.Money     { return o.chargedValue }
func (o *Order) Quote() *catalog.Terms           { return o.quote }
func (o *Order) Details() string                 { return o.details }
func (o *Order) CreatedAt() time.Time            { return o.createdAt }
func (o *Order) UpdatedAt() time.Time            { return o.updatedAt }
func (o *Order) CancelledAt() *time.Time         { return o.cancelledAt }

// Stages returns the stages ordered by position.
func (o *Order) Stages() []*Stage {
	return slices.Clone(o.stages)
}

// Stage finds a stage of this order by id.
func (o *Order) Stage(id kernel.ID) (*Stage, error) {
	for _, s := range o.stages {
		if s.ID().IsEqual(id) {
			return s, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("stage", id.String())
}

// NextStatuses lists the statuses the order may move to from its current state.
func (o *Order) NextStatuses() []Status {
	return o.status.NextStatuses()
}

// IsOverdue reports whether the order is still open past its expected delivery date.
func (o *Order) IsOverdue(today time.Time) bool {
	return o.expectedDelivery != nil && !o.status.IsClosed() && o.expectedDelivery.Before(kernel.DateOf(today))
}

// FlagOverdue records an overdue event when the order is overdue on today. It reports whether
// the event was recorded. The order's state is not changed.
func (o *Order) FlagOverdue(today time.Time) bool {
	if !o.IsOverdue(today) {
		return false
	}
	day := kernel.DateOf(today)
	o.Record(kernel.NewDomainEvent(EventOverdue, aggregateType, o.id, today, map[string]any{
		"code":             o.code.String(),
		"fulfillerId":      o.fulfiller.ID().Int64(),
		"expectedDelivery": o.expectedDelivery.Format(time.DateOnly),
		"daysLate":         int(day.Sub(*o.expectedDelivery).Hours() / 24),
	}))
	return true
}

// Transition moves the order to target.
//
// Business rules:
//   - AWAITING_APPROVAL may be requested by either party of the order or an admin
//   - Every other target needs the assigned fulfiller or an admin
//   - Re-applying the current status succeeds without any effect
//   - Entering APPROVED or later requires a charged value
//   - Entering FINALIZED or DELIVERED stamps the actual delivery date if unset
func (o *Order) Transition(actor kernel.Actor, target Status, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.authorizeTransition(actor, target); err != nil {
		return err
	}
	if err := o.status.CanTransitionTo(target); err != nil {
		return err
	}
	if target == o.status {
		return nil
	}
	if target.RequiresChargedValue() && o.chargedValue == nil {
		return errs.NewValueIsRequiredErrorWithCause("charged value",
			fmt.Errorf("order %s cannot enter %s without a charged value", o.id, target))
	}

	from := o.status
	o.status = target
	if target.IsComplete() && o.actualDelivery == nil {
		delivered := kernel.DateOf(now)
		o.actualDelivery = &delivered
	}
	if target == Cancelled {
		cancelled := now.UTC()
		o.cancelledAt = &cancelled
	}
	o.updatedAt = now.UTC()

	o.Record(kernel.NewDomainEvent(EventStatusChanged, aggregateType, o.id, now, map[string]any{
		"from":  from.String(),
		"to":    target.String(),
		"actor": actor.String(),
	}))
	return nil
}

// AddStage appends a PENDING stage with the next position. Allowed only while the order is open.
func (o *Order) AddStage(actor kernel.Actor, stageID kernel.ID, name, observations string, now time.Time) (*Stage, error) {
	if err := o.authorizeFulfillerSide(actor, "add a stage to"); err != nil {
		return nil, err
	}
	if o.status.IsClosed() {
		return nil, errs.NewInvalidOrderStateError(fmt.Sprintf("order %s is %s, stages can no longer be added", o.id, o.status))
	}

	stage, err := newStage(stageID, o.id, len(o.stages)+1, name, observations, now)
	if err != nil {
		return nil, err
	}

	o.stages = append(o.stages, stage)
	o.updatedAt = now.UTC()

	o.Record(kernel.NewDomainEvent(EventStageAdded, aggregateType, o.id, now, map[string]any{
		"stageId":  stage.ID().Int64(),
		"position": stage.Position(),
		"name":     stage.Name(),
	}))
	return stage, nil
}

// AdvanceStage moves one stage along PENDING -> IN_PROGRESS -> COMPLETED.
// Stages of a cancelled order are frozen.
func (o *Order) AdvanceStage(actor kernel.Actor, stageID kernel.ID, target StageStatus, now time.Time) (*Stage, error) {
	if err := o.authorizeFulfillerSide(actor, "advance a stage of"); err != nil {
		return nil, err
	}
	stage, err := o.Stage(stageID)
	if err != nil {
		return nil, err
	}
	if o.status == Cancelled {
		return nil, errs.NewInvalidOrderStateError(fmt.Sprintf("order %s is cancelled", o.id))
	}

	from := stage.Status()
	if err = stage.advance(target, now); err != nil {
		return nil, err
	}
	o.updatedAt = now.UTC()

	o.Record(kernel.NewDomainEvent(EventStageAdvanced, aggregateType, o.id, now, map[string]any{
		"stageId": stage.ID().Int64(),
		"from":    from.String(),
		"to":      stage.Status().String(),
	}))
	return stage, nil
}

// ChangeChargedValue replaces the charged value while the order is open.
// Existing outsourcing requests are not affected; their settlement is computed on demand.
func (o *Order) ChangeChargedValue(actor kernel.Actor, value kernel.Money, now time.Time) error {
	if err := o.authorizeFulfillerSide(actor, "change the charged value of"); err != nil {
		return err
	}
	if o.status.IsClosed() {
		return errs.NewInvalidOrderStateError(fmt.Sprintf("order %s is %s, its value is frozen", o.id, o.status))
	}
	if err := value.Validate(); err != nil {
		return err
	}

	previous := moneyString(o.chargedValue)
	o.chargedValue = &value
	o.updatedAt = now.UTC()

	o.Record(kernel.NewDomainEvent(EventChargedValueChanged, aggregateType, o.id, now, map[string]any{
		"from": previous,
		"to":   value.String(),
	}))
	return nil
}

// RescheduleDelivery replaces the expected delivery date while the order is open.
func (o *Order) RescheduleDelivery(actor kernel.Actor, expected time.Time, now time.Time) error {
	if err := o.authorizeFulfillerSide(actor, "reschedule"); err != nil {
		return err
	}
	if o.status.IsClosed() {
		return errs.NewInvalidOrderStateError(fmt.Sprintf("order %s is %s, its schedule is frozen", o.id, o.status))
	}
	if err := o.setExpectedDelivery(expected); err != nil {
		return err
	}
	o.updatedAt = now.UTC()

	o.Record(kernel.NewDomainEvent(EventExpectedDeliveryChanged, aggregateType, o.id, now, map[string]any{
		"expectedDelivery": o.expectedDelivery.Format(time.DateOnly),
	}))
	return nil
}

// IsAssignedFulfiller reports whether id is the fulfiller currently producing the order.
func (o *Order) IsAssignedFulfiller(id kernel.ID) bool {
	return o.fulfiller.ID().IsEqual(id)
}

func (o *Order) authorizeTransition(actor kernel.Actor, target Status) error {
	if target == Draft || target == AwaitingApproval {
		return o.authorizeParty(actor, fmt.Sprintf("move to %s", target))
	}
	return o.authorizeFulfillerSide(actor, fmt.Sprintf("move to %s", target))
}

func (o *Order) authorizeFulfillerSide(actor kernel.Actor, action string) error {
	if actor.IsAdmin() || actor.IsFulfiller(o.fulfiller.ID()) {
		return nil
	}
	return errs.NewUnauthorizedError(actor, fmt.Sprintf("%s order %s", action, o.id))
}

func (o *Order) authorizeParty(actor kernel.Actor, action string) error {
	if actor.IsAdmin() || actor.IsFulfiller(o.fulfiller.ID()) || actor.IsRequester(o.requester.ID()) {
		return nil
	}
	return errs.NewUnauthorizedError(actor, fmt.Sprintf("%s order %s", action, o.id))
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code Code) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

func (o *Order) setParties(requester, fulfiller Party) error {
	if err := errors.Join(requester.Validate(), fulfiller.Validate()); err != nil {
		return err
	}
	o.requester = requester
	o.fulfiller = fulfiller
	return nil
}

func (o *Order) setServiceType(serviceType kernel.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	o.serviceType = serviceType
	return nil
}

func (o *Order) setEntryDate(entry time.Time) error {
	if entry.IsZero() {
		return errs.NewValueIsRequiredError("entry date")
	}
	o.entryDate = kernel.DateOf(entry)
	return nil
}

func (o *Order) setExpectedDelivery(expected time.Time) error {
	date := kernel.DateOf(expected)
	if date.Before(o.entryDate) {
		return errs.NewValueIsInvalidErrorWithCause("expected delivery",
			fmt.Errorf("%s is earlier than entry date %s", date.Format(time.DateOnly), o.entryDate.Format(time.DateOnly)))
	}
	o.expectedDelivery = &date
	return nil
}

func (o *Order) setChargedValue(value *kernel.Money) error {
	if value == nil {
		return nil
	}
	if err := value.Validate(); err != nil {
		return err
	}
	o.chargedValue = value
	return nil
}

func (o *Order) setQuote(quote *catalog.Terms) error {
	if quote == nil {
		return nil
	}
	if err := quote.Validate(); err != nil {
		return err
	}
	o.quote = quote
	return nil
}

func (o *Order) setDetails(details string) error {
	if len(details) > maxDetailsLength {
		return errs.NewValueIsOutOfRangeError("details length", len(details), 0, maxDetailsLength)
	}
	o.details = details
	return nil
}

func moneyString(m *kernel.Money) any {
	if m == nil {
		return nil
	}
	return m.String()
}
