package queries

import (
	"context"
	"time"
)

// GetOrderQueryHandler loads an order by id. Unknown ids fail with an ObjectNotFoundError.
type GetOrderQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetOrderQueryHandler(uowFactory ReadUoWFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.uowFactory.Create().OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	return orderView(o, time.Now()), nil
}
