package queries

import (
	"context"
)

type GetOutsourcingRequestQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetOutsourcingRequestQueryHandler(uowFactory ReadUoWFactory) GetOutsourcingRequestQueryHandler {
	return GetOutsourcingRequestQueryHandler{uowFactory: uowFactory}
}

func (h GetOutsourcingRequestQueryHandler) Handle(ctx context.Context, query GetOutsourcingRequestQuery) (OutsourcingView, error) {
	if err := query.Validate(); err != nil {
		return OutsourcingView{}, err
	}

	r, err := h.uowFactory.Create().OutsourcingRepository().Get(ctx, query.RequestID())
	if err != nil {
		return OutsourcingView{}, err
	}

	return outsourcingView(r), nil
}
