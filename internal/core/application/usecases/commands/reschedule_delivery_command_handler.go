package commands

import (
	"context"
	"time"

	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/ports"
)

type RescheduleDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.AggregateLocker
}

func NewRescheduleDeliveryCommandHandler(uowFactory OrderUoWFactory, locker ports.AggregateLocker) RescheduleDeliveryCommandHandler {
	return RescheduleDeliveryCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

func (h *RescheduleDeliveryCommandHandler) Handle(ctx context.Context, cmd RescheduleDeliveryCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, h.locker, cmd.OrderID(), func(_ ports.OrderRepository, o *order.Order) error {
		return o.RescheduleDelivery(cmd.Actor(), cmd.Expected(), time.Now())
	})
}
