package commands

import (
	"context"
	"time"

	"dentallab/internal/core/domain/model/catalog"
)

// SaveOfferingCommandHandler upserts a catalog entry. Revising an entry never touches orders
// or outsourcing requests created from it.
type SaveOfferingCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewSaveOfferingCommandHandler(uowFactory CatalogUoWFactory) SaveOfferingCommandHandler {
	return SaveOfferingCommandHandler{uowFactory: uowFactory}
}

func (h *SaveOfferingCommandHandler) Handle(ctx context.Context, cmd SaveOfferingCommand) (*catalog.Offering, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OfferingRepository()
	offering, err := notFoundAsNil(repo.Get(ctx, cmd.FulfillerID(), cmd.ServiceType()))
	if err != nil {
		return nil, err
	}

	if offering == nil {
		offering, err = catalog.NewOffering(cmd.FulfillerID(), cmd.ServiceType(), cmd.Spec(), now)
	} else {
		err = offering.Revise(cmd.Spec(), now)
	}
	if err != nil {
		return nil, err
	}

	if err = repo.Save(ctx, offering); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return offering, nil
}
