package commands

import (
	"context"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/ports"
)

// FlagOverdueOrdersCommandHandler lists overdue orders and publishes one order.overdue event
// per order. No order state changes, so no transaction is opened.
type FlagOverdueOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

func NewFlagOverdueOrdersCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) FlagOverdueOrdersCommandHandler {
	return FlagOverdueOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the number of orders flagged.
func (h *FlagOverdueOrdersCommandHandler) Handle(ctx context.Context, cmd FlagOverdueOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	overdue, err := uow.OrderRepository().ListOverdue(ctx, cmd.Today())
	if err != nil {
		return 0, err
	}

	var events []kernel.DomainEvent
	for _, o := range overdue {
		if o.FlagOverdue(cmd.Today()) {
			events = append(events, o.DomainEvents()...)
			o.ClearDomainEvents()
		}
	}
	if len(events) == 0 {
		return 0, nil
	}

	if err = h.publisher.Publish(ctx, events...); err != nil {
		return 0, err
	}
	return len(events), nil
}
