package commands

import (
	"context"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/core/ports"
)

// mutateRequest loads an outsourcing request under its aggregate lock, applies the change and
// persists it.
func mutateRequest(
	ctx context.Context,
	uowFactory OutsourcingUoWFactory,
	locker ports.AggregateLocker,
	requestID kernel.ID,
	apply func(r *outsourcing.Request) error,
) (*outsourcing.Request, error) {
	var updated *outsourcing.Request
	err := withLock(ctx, locker, ports.OutsourcingLockKey(requestID), func() error {
		uow := uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		repo := uow.OutsourcingRepository()
		r, err := repo.Get(ctx, requestID)
		if err != nil {
			return err
		}

		if err = apply(r); err != nil {
			return err
		}

		if err = repo.Update(ctx, r); err != nil {
			return err
		}

		if err = uow.Commit(ctx); err != nil {
			return err
		}

		updated = r
		return nil
	})
	return updated, err
}
