package services

import (
	"fmt"
	"time"

	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/pkg/errs"
)

// OpenRequest is the caller's part of a new outsourcing request.
type OpenRequest struct {
	RequestID          kernel.ID
	DelegateID         kernel.ID
	Percentage         kernel.Percentage
	Kind               outsourcing.Kind
	ServiceDescription string
	Rationale          string
}

// OutsourcingCoordinator opens outsourcing requests once every rule that spans the order, the
// catalog and existing requests holds.
//
// Checks, in order:
//   - the actor is the order's assigned fulfiller
//   - the order is IN_PRODUCTION
//   - no other request for the order is active
//   - the delegate is another fulfiller
//   - the delegate holds an active offering for the service type that accepts delegated work
//   - the assigned fulfiller's own offering, when present, does not forbid delegation
//   - the percentage lies in (0, 100]
//
// The first failed check is reported; nothing is created.
type OutsourcingCoordinator struct {
	pricing PricingResolver
}

func NewOutsourcingCoordinator() OutsourcingCoordinator {
	return OutsourcingCoordinator{pricing: NewPricingResolver()}
}

// Open builds a REQUESTED outsourcing request for o. active is the order's currently active
// request, or nil.
func (c OutsourcingCoordinator) Open(
	actor kernel.Actor,
	o *order.Order,
	active *outsourcing.Request,
	ownOffering *catalog.Offering,
	delegateOffering *catalog.Offering,
	req OpenRequest,
	now time.Time,
) (*outsourcing.Request, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if !actor.IsFulfiller(o.Fulfiller().ID()) {
		return nil, errs.NewUnauthorizedError(actor, fmt.Sprintf("outsource order %s", o.ID()))
	}
	if o.Status() != order.InProduction {
		return nil, errs.NewInvalidOrderStateError(fmt.Sprintf(
			"order %s is %s, work can only be outsourced while %s", o.ID(), o.Status(), order.InProduction))
	}
	if active.Validate() == nil && active.IsActive() {
		return nil, errs.NewOutsourcingAlreadyActiveError(o.ID())
	}
	if o.IsAssignedFulfiller(req.DelegateID) {
		return nil, errs.NewValueIsInvalidErrorWithCause("delegate",
			fmt.Errorf("fulfiller %s cannot delegate order %s to itself", req.DelegateID, o.ID()))
	}
	if delegateOffering.Validate() == nil && !delegateOffering.FulfillerID().IsEqual(req.DelegateID) {
		return nil, errs.NewInvalidServiceOfferingError(fmt.Sprintf(
			"catalog entry belongs to fulfiller %s, not %s", delegateOffering.FulfillerID(), req.DelegateID))
	}
	if _, err := c.pricing.Resolve(delegateOffering, catalog.ModeDelegate); err != nil {
		return nil, err
	}
	if ownOffering.Validate() == nil && !ownOffering.Policy().AllowsDelegate() {
		return nil, errs.NewPolicyMismatchError(fmt.Sprintf(
			"fulfiller %s declares %s for %s and cannot delegate it", o.Fulfiller().ID(), ownOffering.Policy(), o.ServiceType()))
	}
	if err := req.Percentage.Validate(); err != nil {
		return nil, err
	}

	return outsourcing.NewRequest(outsourcing.NewRequestParams{
		ID:                    req.RequestID,
		OrderID:               o.ID(),
		RequestingFulfillerID: o.Fulfiller().ID(),
		ExecutingFulfillerID:  req.DelegateID,
		Percentage:            req.Percentage,
		Kind:                  req.Kind,
		ServiceDescription:    req.ServiceDescription,
		Rationale:             req.Rationale,
	}, now)
}
