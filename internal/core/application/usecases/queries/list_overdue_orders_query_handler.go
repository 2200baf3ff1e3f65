package queries

import (
	"context"
)

// ListOverdueOrdersQueryHandler returns overdue orders, oldest expected delivery first.
type ListOverdueOrdersQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewListOverdueOrdersQueryHandler(uowFactory ReadUoWFactory) ListOverdueOrdersQueryHandler {
	return ListOverdueOrdersQueryHandler{uowFactory: uowFactory}
}

func (h ListOverdueOrdersQueryHandler) Handle(ctx context.Context, query ListOverdueOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.uowFactory.Create().OrderRepository().ListOverdue(ctx, query.Today())
	if err != nil {
		return nil, err
	}

	return orderViews(orders, query.Today()), nil
}
