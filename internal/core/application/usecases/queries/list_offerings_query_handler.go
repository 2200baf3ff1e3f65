package queries

import (
	"context"

	"dentallab/internal/core/domain/model/catalog"
)

type ListOfferingsQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewListOfferingsQueryHandler(uowFactory ReadUoWFactory) ListOfferingsQueryHandler {
	return ListOfferingsQueryHandler{uowFactory: uowFactory}
}

func (h ListOfferingsQueryHandler) Handle(ctx context.Context, query ListOfferingsQuery) ([]OfferingView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repo := h.uowFactory.Create().OfferingRepository()

	var (
		offerings []*catalog.Offering
		err       error
	)
	if id := query.FulfillerID(); id != nil {
		offerings, err = repo.ListByFulfiller(ctx, *id)
	} else {
		offerings, err = repo.ListByServiceType(ctx, query.ServiceType())
	}
	if err != nil {
		return nil, err
	}

	views := make([]OfferingView, 0, len(offerings))
	for _, o := range offerings {
		views = append(views, offeringView(o))
	}
	return views, nil
}
