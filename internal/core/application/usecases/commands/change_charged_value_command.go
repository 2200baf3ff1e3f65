package commands

import (
	"errors"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/guard"
)

var (
	ErrChangeChargedValueCommandIsNotConstructed = errors.New(
		"ChangeChargedValueCommand must be created via NewChangeChargedValueCommand constructor",
	)
)

// ChangeChargedValueCommand replaces the value charged for an open order.
type ChangeChargedValueCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.ID
	value   kernel.Money

	guard guard.ConstructorGuard
}

func NewChangeChargedValueCommand(actor kernel.Actor, orderID kernel.ID, value kernel.Money) (ChangeChargedValueCommand, error) {
	cmd := ChangeChargedValueCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setActor(&cmd.actor, actor),
		setID(&cmd.orderID, orderID),
		value.Validate(),
	); err != nil {
		return ChangeChargedValueCommand{}, err
	}
	cmd.value = value

	return cmd, nil
}

func (c ChangeChargedValueCommand) Validate() error {
	return c.guard.Validate(ErrChangeChargedValueCommandIsNotConstructed)
}

func (c ChangeChargedValueCommand) Actor() kernel.Actor { return c.actor }
func (c ChangeChargedValueCommand) OrderID() kernel.ID  { return c.orderID }
func (c ChangeChargedValueCommand) Value() kernel.Money { return c.value }
