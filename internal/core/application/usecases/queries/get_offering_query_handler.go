package queries

import (
	"context"
)

type GetOfferingQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetOfferingQueryHandler(uowFactory ReadUoWFactory) GetOfferingQueryHandler {
	return GetOfferingQueryHandler{uowFactory: uowFactory}
}

func (h GetOfferingQueryHandler) Handle(ctx context.Context, query GetOfferingQuery) (OfferingView, error) {
	if err := query.Validate(); err != nil {
		return OfferingView{}, err
	}

	offering, err := h.uowFactory.Create().OfferingRepository().Get(ctx, query.FulfillerID(), query.ServiceType())
	if err != nil {
		return OfferingView{}, err
	}

	return offeringView(offering), nil
}
