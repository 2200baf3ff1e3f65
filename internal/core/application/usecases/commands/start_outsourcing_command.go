package commands

import (
	"errors"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/guard"
)

var (
	ErrStartOutsourcingCommandIsNotConstructed = errors.New(
		"StartOutsourcingCommand must be created via NewStartOutsourcingCommand constructor",
	)
)

type StartOutsourcingCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	requestID kernel.ID

	guard guard.ConstructorGuard
}

func NewStartOutsourcingCommand(actor kernel.Actor, requestID kernel.ID) (StartOutsourcingCommand, error) {
	cmd := StartOutsourcingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setActor(&cmd.actor, actor),
		setID(&cmd.requestID, requestID),
	); err != nil {
		return StartOutsourcingCommand{}, err
	}

	return cmd, nil
}

func (c StartOutsourcingCommand) Validate() error {
	return c.guard.Validate(ErrStartOutsourcingCommandIsNotConstructed)
}

func (c StartOutsourcingCommand) Actor() kernel.Actor  { return c.actor }
func (c StartOutsourcingCommand) RequestID() kernel.ID { return c.requestID }
