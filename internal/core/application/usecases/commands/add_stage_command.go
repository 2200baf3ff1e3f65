package commands

import (
	"errors"
	"strings"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
	"dentallab/internal/pkg/guard"
)

var (
	ErrAddStageCommandIsNotConstructed = errors.New(
		"AddStageCommand must be created via NewAddStageCommand constructor",
	)
)

// AddStageCommand appends a production stage to an order.
type AddStageCommand struct { //nolint:recvcheck //using for validation
	actor        kernel.Actor
	orderID      kernel.ID
	name         string
	observations string

	guard guard.ConstructorGuard
}

func NewAddStageCommand(actor kernel.Actor, orderID kernel.ID, name, observations string) (AddStageCommand, error) {
	cmd := AddStageCommand{
		observations: strings.TrimSpace(observations),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setActor(&cmd.actor, actor),
		setID(&cmd.orderID, orderID),
		cmd.setName(name),
	); err != nil {
		return AddStageCommand{}, err
	}

	return cmd, nil
}

func (c AddStageCommand) Validate() error {
	return c.guard.Validate(ErrAddStageCommandIsNotConstructed)
}

func (c AddStageCommand) Actor() kernel.Actor  { return c.actor }
func (c AddStageCommand) OrderID() kernel.ID   { return c.orderID }
func (c AddStageCommand) Name() string         { return c.name }
func (c AddStageCommand) Observations() string { return c.observations }

func (c *AddStageCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("stage name")
	}
	c.name = name
	return nil
}
