package commands

import (
	"errors"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/guard"
)

var (
	ErrDeleteOfferingCommandIsNotConstructed = errors.New(
		"DeleteOfferingCommand must be created via NewDeleteOfferingCommand constructor",
	)
)

// DeleteOfferingCommand removes a catalog entry. Orders keep the terms they captured.
type DeleteOfferingCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Actor
	fulfillerID kernel.ID
	serviceType kernel.ServiceType

	guard guard.ConstructorGuard
}

func NewDeleteOfferingCommand(actor kernel.Actor, fulfillerID kernel.ID, serviceType kernel.ServiceType) (DeleteOfferingCommand, error) {
	cmd := DeleteOfferingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setActor(&cmd.actor, actor),
		setID(&cmd.fulfillerID, fulfillerID),
		serviceType.Validate(),
	); err != nil {
		return DeleteOfferingCommand{}, err
	}
	cmd.serviceType = serviceType

	if err := authorizeCatalogOwner(actor, fulfillerID); err != nil {
		return DeleteOfferingCommand{}, err
	}

	return cmd, nil
}

func (c DeleteOfferingCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOfferingCommandIsNotConstructed)
}

func (c DeleteOfferingCommand) FulfillerID() kernel.ID          { return c.fulfillerID }
func (c DeleteOfferingCommand) ServiceType() kernel.ServiceType { return c.serviceType }
