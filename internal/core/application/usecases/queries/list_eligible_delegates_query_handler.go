package queries

import (
	"context"
	"errors"

	"dentallab/internal/core/domain/services"
	"dentallab/internal/pkg/errs"
)

// ListEligibleDelegatesQueryHandler reads the order and every catalog entry for its service
// type, then lets the DelegateFinder filter and rank them.
type ListEligibleDelegatesQueryHandler struct {
	uowFactory ReadUoWFactory
	finder     services.DelegateFinder
}

func NewListEligibleDelegatesQueryHandler(uowFactory ReadUoWFactory) ListEligibleDelegatesQueryHandler {
	return ListEligibleDelegatesQueryHandler{
		uowFactory: uowFactory,
		finder:     services.NewDelegateFinder(),
	}
}

func (h ListEligibleDelegatesQueryHandler) Handle(ctx context.Context, query ListEligibleDelegatesQuery) ([]DelegateView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	uow := h.uowFactory.Create()

	o, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	offerings := uow.OfferingRepository()
	own, err := offerings.Get(ctx, o.Fulfiller().ID(), o.ServiceType())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	candidates, err := offerings.ListByServiceType(ctx, o.ServiceType())
	if err != nil {
		return nil, err
	}

	delegates := h.finder.Eligible(o, own, candidates)
	views := make([]DelegateView, 0, len(delegates))
	for _, d := range delegates {
		views = append(views, delegateView(d))
	}
	return views, nil
}
