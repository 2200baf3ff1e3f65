package commands

import (
	"context"
	"time"

	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/ports"
)

// TransitionOrderCommandHandler moves an order through its lifecycle. Transitions against the
// same order are serialized by the aggregate lock.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.AggregateLocker
}

func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory, locker ports.AggregateLocker) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, h.locker, cmd.OrderID(), func(_ ports.OrderRepository, o *order.Order) error {
		return o.Transition(cmd.Actor(), cmd.Target(), time.Now())
	})
}
