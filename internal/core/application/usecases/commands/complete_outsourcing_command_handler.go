package commands

import (
	"context"
	"time"

	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/core/ports"
)

// CompleteOutsourcingCommandHandler closes delegated work. The parent order is left as is; finalizing it is a separate transition by the requesting fulfiller.
type CompleteOutsourcingCommandHandler struct {
	uowFactory OutsourcingUoWFactory
	locker     ports.AggregateLocker
}

func NewCompleteOutsourcingCommandHandler(uowFactory OutsourcingUoWFactory, locker ports.AggregateLocker) CompleteOutsourcingCommandHandler {
	return CompleteOutsourcingCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

func (h *CompleteOutsourcingCommandHandler) Handle(ctx context.Context, cmd CompleteOutsourcingCommand) (*outsourcing.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateRequest(ctx, h.uowFactory, h.locker, cmd.RequestID(), func(r *outsourcing.Request) error {
		return r.Complete(cmd.Actor(), time.Now())
	})
}
