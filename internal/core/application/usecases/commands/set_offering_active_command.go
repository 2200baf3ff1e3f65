package commands

import (
	"errors"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/guard"
)

var (
	ErrSetOfferingActiveCommandIsNotConstructed = errors.New(
		"SetOfferingActiveCommand must be created via NewSetOfferingActiveCommand constructor",
	)
)

// SetOfferingActiveCommand shows or hides a catalog entry for new orders and delegations.
type SetOfferingActiveCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Actor
	fulfillerID kernel.ID
	serviceType kernel.ServiceType
	active      bool

	guard guard.ConstructorGuard
}

func NewSetOfferingActiveCommand(
	actor kernel.Actor,
	fulfillerID kernel.ID,
	serviceType kernel.ServiceType,
	active bool,
) (SetOfferingActiveCommand, error) {
	cmd := SetOfferingActiveCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setActor(&cmd.actor, actor),
		setID(&cmd.fulfillerID, fulfillerID),
		serviceType.Validate(),
	); err != nil {
		return SetOfferingActiveCommand{}, err
	}
	cmd.serviceType = serviceType

	if err := authorizeCatalogOwner(actor, fulfillerID); err != nil {
		return SetOfferingActiveCommand{}, err
	}

	return cmd, nil
}

func (c SetOfferingActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetOfferingActiveCommandIsNotConstructed)
}

func (c SetOfferingActiveCommand) Actor() kernel.Actor             { return c.actor }
func (c SetOfferingActiveCommand) FulfillerID() kernel.ID          { return c.fulfillerID }
func (c SetOfferingActiveCommand) ServiceType() kernel.ServiceType { return c.serviceType }
func (c SetOfferingActiveCommand) Active() bool                    { return c.active }
