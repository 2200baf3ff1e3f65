package commands

import (
	"context"
	"time"

	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/core/ports"
)

// RespondOutsourcingCommandHandler accepts or refuses a request. A refusal frees the order for
// a new proposal to a different delegate.
type RespondOutsourcingCommandHandler struct {
	uowFactory OutsourcingUoWFactory
	locker     ports.AggregateLocker
}

func NewRespondOutsourcingCommandHandler(uowFactory OutsourcingUoWFactory, locker ports.AggregateLocker) RespondOutsourcingCommandHandler {
	return RespondOutsourcingCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

func (h *RespondOutsourcingCommandHandler) Handle(ctx context.Context, cmd RespondOutsourcingCommand) (*outsourcing.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateRequest(ctx, h.uowFactory, h.locker, cmd.RequestID(), func(r *outsourcing.Request) error {
		return r.Respond(cmd.Actor(), cmd.Accept(), cmd.Note(), time.Now())
	})
}
