package commands

import (
	"context"
	"time"

	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/core/ports"
)

type CancelOutsourcingCommandHandler struct {
	uowFactory OutsourcingUoWFactory
	locker     ports.AggregateLocker
}

func NewCancelOutsourcingCommandHandler(uowFactory OutsourcingUoWFactory, locker ports.AggregateLocker) CancelOutsourcingCommandHandler {
	return CancelOutsourcingCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

func (h *CancelOutsourcingCommandHandler) Handle(ctx context.Context, cmd CancelOutsourcingCommand) (*outsourcing.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateRequest(ctx, h.uowFactory, h.locker, cmd.RequestID(), func(r *outsourcing.Request) error {
		return r.Cancel(cmd.Actor(), cmd.Reason(), time.Now())
	})
}
