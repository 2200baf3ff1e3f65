package commands

import (
	"errors"
	"strings"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/guard"
)

var (
	ErrCancelOutsourcingCommandIsNotConstructed = errors.New(
		"CancelOutsourcingCommand must be created via NewCancelOutsourcingCommand constructor",
	)
)

// CancelOutsourcingCommand withdraws a request that has not started executing.
type CancelOutsourcingCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	requestID kernel.ID
	reason    string

	guard guard.ConstructorGuard
}

func NewCancelOutsourcingCommand(actor kernel.Actor, requestID kernel.ID, reason string) (CancelOutsourcingCommand, error) {
	cmd := CancelOutsourcingCommand{
		reason: strings.TrimSpace(reason),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setActor(&cmd.actor, actor),
		setID(&cmd.requestID, requestID),
	); err != nil {
		return CancelOutsourcingCommand{}, err
	}

	return cmd, nil
}

func (c CancelOutsourcingCommand) Validate() error {
	return c.guard.Validate(ErrCancelOutsourcingCommandIsNotConstructed)
}

func (c CancelOutsourcingCommand) Actor() kernel.Actor  { return c.actor }
func (c CancelOutsourcingCommand) RequestID() kernel.ID { return c.requestID }
func (c CancelOutsourcingCommand) Reason() string       { return c.reason }
