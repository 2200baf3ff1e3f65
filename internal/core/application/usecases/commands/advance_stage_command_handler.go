package commands

import (
	"context"
	"time"

	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/ports"
)

// AdvanceStageCommandHandler advances a stage of an order. The owning order is looked up
// first so the change runs under the order's aggregate lock.
type AdvanceStageCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.AggregateLocker
}

func NewAdvanceStageCommandHandler(uowFactory OrderUoWFactory, locker ports.AggregateLocker) AdvanceStageCommandHandler {
	return AdvanceStageCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

func (h *AdvanceStageCommandHandler) Handle(ctx context.Context, cmd AdvanceStageCommand) (*order.Stage, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	owner, err := h.uowFactory.Create().OrderRepository().GetByStageID(ctx, cmd.StageID())
	if err != nil {
		return nil, err
	}

	var advanced *order.Stage
	_, err = mutateOrder(ctx, h.uowFactory, h.locker, owner.ID(), func(_ ports.OrderRepository, o *order.Order) error {
		var advanceErr error
		advanced, advanceErr = o.AdvanceStage(cmd.Actor(), cmd.StageID(), cmd.Target(), time.Now())
		return advanceErr
	})
	if err != nil {
		return nil, err
	}
	return advanced, nil
}
