package commands

import (
	"errors"
	"time"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
	"dentallab/internal/pkg/guard"
)

var (
	ErrRescheduleDeliveryCommandIsNotConstructed = errors.New(
		"RescheduleDeliveryCommand must be created via NewRescheduleDeliveryCommand constructor",
	)
)

// RescheduleDeliveryCommand replaces an open order's expected delivery date.
type RescheduleDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor    kernel.Actor
	orderID  kernel.ID
	expected time.Time

	guard guard.ConstructorGuard
}

func NewRescheduleDeliveryCommand(actor kernel.Actor, orderID kernel.ID, expected time.Time) (RescheduleDeliveryCommand, error) {
	cmd := RescheduleDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setActor(&cmd.actor, actor),
		setID(&cmd.orderID, orderID),
		cmd.setExpected(expected),
	); err != nil {
		return RescheduleDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c RescheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleDeliveryCommandIsNotConstructed)
}

func (c RescheduleDeliveryCommand) Actor() kernel.Actor { return c.actor }
func (c RescheduleDeliveryCommand) OrderID() kernel.ID  { return c.orderID }
func (c RescheduleDeliveryCommand) Expected() time.Time { return c.expected }

func (c *RescheduleDeliveryCommand) setExpected(expected time.Time) error {
	if expected.IsZero() {
		return errs.NewValueIsRequiredError("expected delivery")
	}
	c.expected = expected
	return nil
}
