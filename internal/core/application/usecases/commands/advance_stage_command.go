package commands

import (
	"errors"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/pkg/guard"
)

var (
	ErrAdvanceStageCommandIsNotConstructed = errors.New(
		"AdvanceStageCommand must be created via NewAdvanceStageCommand constructor",
	)
)

// AdvanceStageCommand moves a stage one step along PENDING -> IN_PROGRESS -> COMPLETED.
type AdvanceStageCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	stageID kernel.ID
	target  order.StageStatus

	guard guard.ConstructorGuard
}

func NewAdvanceStageCommand(actor kernel.Actor, stageID kernel.ID, target order.StageStatus) (AdvanceStageCommand, error) {
	cmd := AdvanceStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setActor(&cmd.actor, actor),
		setID(&cmd.stageID, stageID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceStageCommand{}, err
	}

	return cmd, nil
}

func (c AdvanceStageCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStageCommandIsNotConstructed)
}

func (c AdvanceStageCommand) Actor() kernel.Actor       { return c.actor }
func (c AdvanceStageCommand) StageID() kernel.ID        { return c.stageID }
func (c AdvanceStageCommand) Target() order.StageStatus { return c.target }

func (c *AdvanceStageCommand) setTarget(target order.StageStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
