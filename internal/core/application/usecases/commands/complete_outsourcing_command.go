package commands

import (
	"errors"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/guard"
)

var (
	ErrCompleteOutsourcingCommandIsNotConstructed = errors.New(
		"CompleteOutsourcingCommand must be created via NewCompleteOutsourcingCommand constructor",
	)
)

type CompleteOutsourcingCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	requestID kernel.ID

	guard guard.ConstructorGuard
}

func NewCompleteOutsourcingCommand(actor kernel.Actor, requestID kernel.ID) (CompleteOutsourcingCommand, error) {
	cmd := CompleteOutsourcingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setActor(&cmd.actor, actor),
		setID(&cmd.requestID, requestID),
	); err != nil {
		return CompleteOutsourcingCommand{}, err
	}

	return cmd, nil
}

func (c CompleteOutsourcingCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOutsourcingCommandIsNotConstructed)
}

func (c CompleteOutsourcingCommand) Actor() kernel.Actor  { return c.actor }
func (c CompleteOutsourcingCommand) RequestID() kernel.ID { return c.requestID }
