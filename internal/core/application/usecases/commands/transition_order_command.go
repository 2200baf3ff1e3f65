package commands

import (
	"errors"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
)

// TransitionOrderCommand asks to move an order to a target status.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(actor, orderID, order.Approved)
//	updated, err := handler.Handle(ctx, cmd)
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.ID
	target  order.Status

	guard guard.ConstructorGuard
}

func NewTransitionOrderCommand(actor kernel.Actor, orderID kernel.ID, target order.Status) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setActor(&cmd.actor, actor),
		setID(&cmd.orderID, orderID),
		cmd.setTarget(target),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) Actor() kernel.Actor  { return c.actor }
func (c TransitionOrderCommand) OrderID() kernel.ID   { return c.orderID }
func (c TransitionOrderCommand) Target() order.Status { return c.target }

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
