package commands

import (
	"context"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/ports"
)

// mutateOrder loads the order under its aggregate lock inside a transaction, applies the change
// and persists it. Nothing is written when apply fails.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	locker ports.AggregateLocker,
	orderID kernel.ID,
	apply func(repo ports.OrderRepository, o *order.Order) error,
) (*order.Order, error) {
	var updated *order.Order
	err := withLock(ctx, locker, ports.OrderLockKey(orderID), func() error {
		uow := uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		repo := uow.OrderRepository()
		o, err := repo.Get(ctx, orderID)
		if err != nil {
			return err
		}

		if err = apply(repo, o); err != nil {
			return err
		}

		if err = repo.Update(ctx, o); err != nil {
			return err
		}

		if err = uow.Commit(ctx); err != nil {
			return err
		}

		updated = o
		return nil
	})
	return updated, err
}
