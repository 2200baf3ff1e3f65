// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, per-aggregate locking, transaction
// management, and persistence.
package commands

import (
	"context"
	"errors"

	"dentallab/internal/core/ports"
	"dentallab/internal/pkg/errs"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OfferingRepoFactory interface {
		OfferingRepository() ports.OfferingRepository
	}

	OutsourcingRepoFactory interface {
		OutsourcingRepository() ports.OutsourcingRepository
	}

	// OrderUoW manages transactions for order operations. Catalog entries are read when an
	// order is priced.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OfferingRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CatalogUoW manages transactions for catalog-only operations.
	CatalogUoW interface {
		TxManager
		OfferingRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OutsourcingUoW manages transactions for changes to a single outsourcing request.
	OutsourcingUoW interface {
		TxManager
		OutsourcingRepoFactory
	}

	OutsourcingUoWFactory interface {
		Create() OutsourcingUoW
	}

	// UoW spans orders, catalog entries and outsourcing requests.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		OfferingRepoFactory
		OutsourcingRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// withLock runs fn while holding the aggregate lock for key.
func withLock(ctx context.Context, locker ports.AggregateLocker, key string, fn func() error) error {
	unlock, err := locker.Lock(ctx, key)
	if err != nil {
		return err
	}
	defer unlock()
	return fn()
}

// notFoundAsNil maps an ObjectNotFoundError to a nil result.
func notFoundAsNil[T any](v *T, err error) (*T, error) {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	return v, err
}
