package commands

import (
	"context"
	"time"

	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/core/ports"
)

// StartOutsourcingCommandHandler moves an accepted request into execution.
type StartOutsourcingCommandHandler struct {
	uowFactory OutsourcingUoWFactory
	locker     ports.AggregateLocker
}

func NewStartOutsourcingCommandHandler(uowFactory OutsourcingUoWFactory, locker ports.AggregateLocker) StartOutsourcingCommandHandler {
	return StartOutsourcingCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

func (h *StartOutsourcingCommandHandler) Handle(ctx context.Context, cmd StartOutsourcingCommand) (*outsourcing.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateRequest(ctx, h.uowFactory, h.locker, cmd.RequestID(), func(r *outsourcing.Request) error {
		return r.Start(cmd.Actor(), time.Now())
	})
}
