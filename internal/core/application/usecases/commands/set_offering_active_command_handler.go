package commands

import (
	"context"
	"time"

	"dentallab/internal/core/domain/model/catalog"
)

type SetOfferingActiveCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewSetOfferingActiveCommandHandler(uowFactory CatalogUoWFactory) SetOfferingActiveCommandHandler {
	return SetOfferingActiveCommandHandler{uowFactory: uowFactory}
}

func (h *SetOfferingActiveCommandHandler) Handle(ctx context.Context, cmd SetOfferingActiveCommand) (*catalog.Offering, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OfferingRepository()
	offering, err := repo.Get(ctx, cmd.FulfillerID(), cmd.ServiceType())
	if err != nil {
		return nil, err
	}

	offering.SetActive(cmd.Active(), time.Now())

	if err = repo.Save(ctx, offering); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return offering, nil
}
