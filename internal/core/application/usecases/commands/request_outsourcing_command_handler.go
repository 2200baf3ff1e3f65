package commands

import (
	"context"
	"time"

	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/core/domain/services"
	"dentallab/internal/core/ports"
)

// RequestOutsourcingCommandHandler opens an outsourcing request for an order.
//
// The parent order's aggregate lock is held for the whole check-then-insert sequence, so two
// concurrent proposals for the same order cannot both pass the single-active check.
type RequestOutsourcingCommandHandler struct {
	uowFactory  UoWFactory
	locker      ports.AggregateLocker
	coordinator services.OutsourcingCoordinator
}

func NewRequestOutsourcingCommandHandler(uowFactory UoWFactory, locker ports.AggregateLocker) RequestOutsourcingCommandHandler {
	return RequestOutsourcingCommandHandler{
		uowFactory:  uowFactory,
		locker:      locker,
		coordinator: services.NewOutsourcingCoordinator(),
	}
}

func (h *RequestOutsourcingCommandHandler) Handle(ctx context.Context, cmd RequestOutsourcingCommand) (*outsourcing.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	p := cmd.Params()

	var created *outsourcing.Request
	err := withLock(ctx, h.locker, ports.OrderLockKey(p.OrderID), func() error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		o, err := uow.OrderRepository().Get(ctx, p.OrderID)
		if err != nil {
			return err
		}

		requests := uow.OutsourcingRepository()
		active, err := notFoundAsNil(requests.GetActiveByOrder(ctx, p.OrderID))
		if err != nil {
			return err
		}

		offerings := uow.OfferingRepository()
		own, err := notFoundAsNil(offerings.Get(ctx, o.Fulfiller().ID(), o.ServiceType()))
		if err != nil {
			return err
		}
		delegate, err := notFoundAsNil(offerings.Get(ctx, p.DelegateID, o.ServiceType()))
		if err != nil {
			return err
		}

		id, err := requests.NextID(ctx)
		if err != nil {
			return err
		}

		request, err := h.coordinator.Open(cmd.Actor(), o, active, own, delegate, services.OpenRequest{
			RequestID:          id,
			DelegateID:         p.DelegateID,
			Percentage:         p.Percentage,
			Kind:               p.Kind,
			ServiceDescription: p.ServiceDescription,
			Rationale:          p.Rationale,
		}, time.Now())
		if err != nil {
			return err
		}

		if err = requests.Add(ctx, request); err != nil {
			return err
		}

		if err = uow.Commit(ctx); err != nil {
			return err
		}

		created = request
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
