package queries

import (
	"context"
	"fmt"

	"dentallab/internal/pkg/errs"
)

type GetSettlementQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetSettlementQueryHandler(uowFactory ReadUoWFactory) GetSettlementQueryHandler {
	return GetSettlementQueryHandler{uowFactory: uowFactory}
}

func (h GetSettlementQueryHandler) Handle(ctx context.Context, query GetSettlementQuery) (SettlementView, error) {
	if err := query.Validate(); err != nil {
		return SettlementView{}, err
	}
	uow := h.uowFactory.Create()

	r, err := uow.OutsourcingRepository().Get(ctx, query.RequestID())
	if err != nil {
		return SettlementView{}, err
	}

	o, err := uow.OrderRepository().Get(ctx, r.OrderID())
	if err != nil {
		return SettlementView{}, err
	}

	charged := o.ChargedValue()
	if charged == nil {
		return SettlementView{}, errs.NewValueIsRequiredErrorWithCause("charged value",
			fmt.Errorf("order %s has no charged value to settle against", o.ID()))
	}

	return SettlementView{
		RequestID:    r.ID(),
		OrderID:      o.ID(),
		ChargedValue: *charged,
		Percentage:   r.Percentage(),
		Amount:       r.Settlement(*charged),
	}, nil
}
