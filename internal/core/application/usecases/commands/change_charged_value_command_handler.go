package commands

import (
	"context"
	"time"

	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/ports"
)

// ChangeChargedValueCommandHandler updates an order's charged value. Settlements of existing
// outsourcing requests follow the new value the next time they are computed.
type ChangeChargedValueCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.AggregateLocker
}

func NewChangeChargedValueCommandHandler(uowFactory OrderUoWFactory, locker ports.AggregateLocker) ChangeChargedValueCommandHandler {
	return ChangeChargedValueCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

func (h *ChangeChargedValueCommandHandler) Handle(ctx context.Context, cmd ChangeChargedValueCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, h.locker, cmd.OrderID(), func(_ ports.OrderRepository, o *order.Order) error {
		return o.ChangeChargedValue(cmd.Actor(), cmd.Value(), time.Now())
	})
}
