package commands

import (
	"context"
	"time"

	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/ports"
)

// AddStageCommandHandler appends a PENDING stage at the next position.
type AddStageCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.AggregateLocker
}

func NewAddStageCommandHandler(uowFactory OrderUoWFactory, locker ports.AggregateLocker) AddStageCommandHandler {
	return AddStageCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

func (h *AddStageCommandHandler) Handle(ctx context.Context, cmd AddStageCommand) (*order.Stage, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var added *order.Stage
	_, err := mutateOrder(ctx, h.uowFactory, h.locker, cmd.OrderID(), func(repo ports.OrderRepository, o *order.Order) error {
		stageID, err := repo.NextStageID(ctx)
		if err != nil {
			return err
		}
		added, err = o.AddStage(cmd.Actor(), stageID, cmd.Name(), cmd.Observations(), time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}
