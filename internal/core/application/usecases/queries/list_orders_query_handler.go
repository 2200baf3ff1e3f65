package queries

import (
	"context"
	"time"

	"dentallab/internal/core/domain/model/order"
)

type ListOrdersQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewListOrdersQueryHandler(uowFactory ReadUoWFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{uowFactory: uowFactory}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repo := h.uowFactory.Create().OrderRepository()

	var (
		orders []*order.Order
		err    error
	)
	if id := query.RequesterID(); id != nil {
		orders, err = repo.ListByRequester(ctx, *id)
	} else {
		orders, err = repo.ListByFulfiller(ctx, *query.FulfillerID())
	}
	if err != nil {
		return nil, err
	}

	return orderViews(orders, time.Now()), nil
}
