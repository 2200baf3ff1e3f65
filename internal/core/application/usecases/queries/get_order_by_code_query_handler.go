package queries

import (
	"context"
	"time"
)

type GetOrderByCodeQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetOrderByCodeQueryHandler(uowFactory ReadUoWFactory) GetOrderByCodeQueryHandler {
	return GetOrderByCodeQueryHandler{uowFactory: uowFactory}
}

func (h GetOrderByCodeQueryHandler) Handle(ctx context.Context, query GetOrderByCodeQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.uowFactory.Create().OrderRepository().GetByCode(ctx, query.Code())
	if err != nil {
		return OrderView{}, err
	}

	return orderView(o, time.Now()), nil
}
