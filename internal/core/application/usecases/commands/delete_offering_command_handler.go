package commands

import (
	"context"
)

type DeleteOfferingCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteOfferingCommandHandler(uowFactory CatalogUoWFactory) DeleteOfferingCommandHandler {
	return DeleteOfferingCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteOfferingCommandHandler) Handle(ctx context.Context, cmd DeleteOfferingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OfferingRepository().Delete(ctx, cmd.FulfillerID(), cmd.ServiceType()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
