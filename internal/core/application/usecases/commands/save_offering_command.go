package commands

import (
	"errors"
	"fmt"

	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
	"dentallab/internal/pkg/guard"
)

var (
	ErrSaveOfferingCommandIsNotConstructed = errors.New(
		"SaveOfferingCommand must be created via NewSaveOfferingCommand constructor",
	)
)

// SaveOfferingCommand creates or revises a fulfiller's catalog entry for one service type.
// Only the owning fulfiller or an admin may edit a catalog.
type SaveOfferingCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Actor
	fulfillerID kernel.ID
	serviceType kernel.ServiceType
	spec        catalog.Spec

	guard guard.ConstructorGuard
}

func NewSaveOfferingCommand(
	actor kernel.Actor,
	fulfillerID kernel.ID,
	serviceType kernel.ServiceType,
	spec catalog.Spec,
) (SaveOfferingCommand, error) {
	cmd := SaveOfferingCommand{
		spec:  spec,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setActor(&cmd.actor, actor),
		setID(&cmd.fulfillerID, fulfillerID),
		serviceType.Validate(),
		spec.Policy.Validate(),
	); err != nil {
		return SaveOfferingCommand{}, err
	}
	cmd.serviceType = serviceType

	if err := authorizeCatalogOwner(actor, fulfillerID); err != nil {
		return SaveOfferingCommand{}, err
	}

	return cmd, nil
}

func (c SaveOfferingCommand) Validate() error {
	return c.guard.Validate(ErrSaveOfferingCommandIsNotConstructed)
}

func (c SaveOfferingCommand) Actor() kernel.Actor             { return c.actor }
func (c SaveOfferingCommand) FulfillerID() kernel.ID          { return c.fulfillerID }
func (c SaveOfferingCommand) ServiceType() kernel.ServiceType { return c.serviceType }
func (c SaveOfferingCommand) Spec() catalog.Spec              { return c.spec }

func authorizeCatalogOwner(actor kernel.Actor, fulfillerID kernel.ID) error {
	if actor.IsAdmin() || actor.IsFulfiller(fulfillerID) {
		return nil
	}
	return errs.NewUnauthorizedError(actor, fmt.Sprintf("edit the catalog of fulfiller %s", fulfillerID))
}
