// Package postgres provides the GORM-based Unit of Work over the order, catalog and
// outsourcing repositories.
//
// A unit of work opens one database transaction. Inside it, order and outsourcing loads take
// row locks (SELECT ... FOR UPDATE) bounded by lock_timeout; a timeout surfaces as a retryable
// ContentionError. Aggregates saved through the repositories are tracked, and their domain
// events are published once the transaction commits.
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher, logger, 2*time.Second)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	o, err := uow.OrderRepository().Get(ctx, orderID)
//	if err != nil {
//	    return err
//	}
//	// ... mutate o
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repository calls made without Begin run directly on the connection pool and publish their
// events immediately.
package postgres

import (
	"context"
	"fmt"
	"slices"
	"time"

	"dentallab/internal/adapters/out/postgres/offeringrepo"
	"dentallab/internal/adapters/out/postgres/orderrepo"
	"dentallab/internal/adapters/out/postgres/outsourcingrepo"
	"dentallab/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db          *gorm.DB
	publisher   ports.EventPublisher
	logger      *zap.Logger
	lockTimeout time.Duration
}

// NewGormUnitOfWorkFactory creates a factory. A zero lockTimeout leaves the server default
// in place. A nil publisher drops domain events.
func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	publisher ports.EventPublisher,
	logger *zap.Logger,
	lockTimeout time.Duration,
) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:          db,
		publisher:   publisher,
		logger:      logger.With(zap.String("component", "postgres_uow")),
		lockTimeout: lockTimeout,
	}
}

// Create produces a new UnitOfWork with its own transaction state and tracked aggregates.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:          f.db,
		publisher:   f.publisher,
		logger:      f.logger,
		lockTimeout: f.lockTimeout,
	}
}

// GormUnitOfWork coordinates one database transaction and the aggregates saved within it.
type GormUnitOfWork struct {
	db          *gorm.DB
	tx          *gorm.DB
	publisher   ports.EventPublisher
	logger      *zap.Logger
	lockTimeout time.Duration

	trackedAggregates []ports.EventSource
}

// Begin initiates a new database transaction. Calling Begin again while a transaction is
// open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if uow.lockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = %d", uow.lockTimeout.Milliseconds())
		if err := tx.Exec(stmt).Error; err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	uow.tx = tx
	uow.trackedAggregates = nil
	return nil
}

// Commit finalizes the transaction, then publishes the domain events of every tracked
// aggregate. Publishing failures are logged; the commit stands.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	tracked := uow.trackedAggregates
	uow.trackedAggregates = nil
	if err != nil {
		return err
	}

	uow.publish(ctx, tracked)
	return nil
}

// Rollback discards the transaction and the tracked aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = nil
	return err
}

func (uow *GormUnitOfWork) conn() (*gorm.DB, bool) {
	if uow.tx != nil {
		return uow.tx, true
	}
	return uow.db, false
}

// OrderRepository returns an order repository bound to the current transaction, if any.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db, inTx := uow.conn()
	return orderrepo.NewGormOrderRepository(db, uow, inTx)
}

// OfferingRepository returns a catalog repository bound to the current transaction, if any.
func (uow *GormUnitOfWork) OfferingRepository() ports.OfferingRepository {
	db, _ := uow.conn()
	return offeringrepo.NewGormOfferingRepository(db)
}

// OutsourcingRepository returns an outsourcing repository bound to the current transaction,
// if any.
func (uow *GormUnitOfWork) OutsourcingRepository() ports.OutsourcingRepository {
	db, inTx := uow.conn()
	return outsourcingrepo.NewGormOutsourcingRepository(db, uow, inTx)
}

// TrackAggregate registers an aggregate saved by a repository. Outside a transaction the
// write is already durable, so its events go out right away.
func (uow *GormUnitOfWork) TrackAggregate(aggregate ports.EventSource) {
	if uow.tx == nil {
		uow.publish(context.Background(), []ports.EventSource{aggregate})
		return
	}
	if !slices.Contains(uow.trackedAggregates, aggregate) {
		uow.trackedAggregates = append(uow.trackedAggregates, aggregate)
	}
}

func (uow *GormUnitOfWork) publish(ctx context.Context, sources []ports.EventSource) {
	for _, source := range sources {
		events := source.DomainEvents()
		source.ClearDomainEvents()
		if len(events) == 0 || uow.publisher == nil {
			continue
		}
		if err := uow.publisher.Publish(ctx, events...); err != nil {
			uow.logger.Warn("failed to publish domain events",
				zap.Int("events", len(events)),
				zap.Error(err),
			)
		}
	}
}
