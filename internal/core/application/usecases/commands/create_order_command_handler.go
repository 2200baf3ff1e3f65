package commands

import (
	"context"
	"errors"
	"time"

	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/domain/services"
	"dentallab/internal/core/ports"
	"dentallab/internal/pkg/errs"
)

// codeAttempts is how many generated codes are tried before giving up on a clash.
const codeAttempts = 3

// CreateOrderCommandHandler opens a new order in DRAFT.
//
// The fulfiller's catalog entry is resolved in self mode and its terms are captured on the
// order. An explicit charged value wins over the catalog price and the expected delivery
// defaults to the entry date plus the quoted lead time. When requested, the service type's
// default stages are seeded. A generated code that clashes with an existing order is replaced
// with a fresh one.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    services.PricingResolver
	templates  services.StageTemplates
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    services.NewPricingResolver(),
		templates:  services.NewStageTemplates(),
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	p := cmd.Params()
	now := time.Now().UTC()
	entryDate := now
	if p.EntryDate != nil {
		entryDate = *p.EntryDate
	}

	requester, err := order.NewParty(p.RequesterID, p.RequesterName)
	if err != nil {
		return nil, err
	}
	fulfiller, err := order.NewParty(p.FulfillerID, p.FulfillerName)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	offering, err := notFoundAsNil(uow.OfferingRepository().Get(ctx, p.FulfillerID, p.ServiceType))
	if err != nil {
		return nil, err
	}
	quote, err := h.pricing.QuoteOrder(offering, p.ChargedValue, p.ExpectedDelivery, entryDate)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	id, err := orderRepo.NextOrderID(ctx)
	if err != nil {
		return nil, err
	}

	var initial []order.InitialStage
	if p.WithDefaultStages {
		for _, name := range h.templates.For(p.ServiceType) {
			stageID, stageErr := orderRepo.NextStageID(ctx)
			if stageErr != nil {
				return nil, stageErr
			}
			initial = append(initial, order.InitialStage{ID: stageID, Name: name})
		}
	}

	chargedValue := quote.ChargedValue
	params := order.NewOrderParams{
		ID:               id,
		Requester:        requester,
		Fulfiller:        fulfiller,
		ServiceType:      p.ServiceType,
		EntryDate:        entryDate,
		ExpectedDelivery: quote.ExpectedDelivery,
		ChargedValue:     &chargedValue,
		Quote:            quote.Terms,
		Details:          p.Details,
		InitialStages:    initial,
	}

	var created *order.Order
	for attempt := 1; ; attempt++ {
		params.Code = order.NewCode(entryDate)
		created, err = order.NewOrder(params, now)
		if err != nil {
			return nil, err
		}

		err = orderRepo.Add(ctx, created)
		if err == nil {
			break
		}
		if !errors.Is(err, ports.ErrOrderCodeTaken) {
			return nil, err
		}
		if attempt == codeAttempts {
			return nil, errs.NewContentionError("order code", err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
