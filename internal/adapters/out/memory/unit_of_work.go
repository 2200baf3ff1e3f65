package memory

import (
	"context"
	"errors"
	"slices"

	"dentallab/internal/core/ports"

	"go.uber.org/zap"
)

var ErrNoActiveTransaction = errors.New("memory: no active transaction")

// UnitOfWorkFactory creates units of work sharing one Store.
//
// Example:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store, publisher, logger)
//	uow := factory.Create()
type UnitOfWorkFactory struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *zap.Logger
}

func NewUnitOfWorkFactory(store *Store, publisher ports.EventPublisher, logger *zap.Logger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		store:     store,
		publisher: publisher,
		logger:    logger.With(zap.String("component", "memory_uow")),
	}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:     f.store,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// UnitOfWork buffers writes between Begin and Commit and publishes the domain events of every
// aggregate it saved once the commit succeeds.
type UnitOfWork struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *zap.Logger

	changes *changeSet
	tracked []ports.EventSource
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.changes != nil {
		return nil
	}
	u.changes = newChangeSet()
	u.tracked = nil
	return nil
}

func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.changes == nil {
		return ErrNoActiveTransaction
	}

	cs := u.changes
	u.changes = nil
	if err := u.store.apply(cs); err != nil {
		u.tracked = nil
		return err
	}

	u.publish(ctx, u.tracked)
	u.tracked = nil
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.changes == nil {
		return ErrNoActiveTransaction
	}
	u.changes = nil
	u.tracked = nil
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

func (u *UnitOfWork) OfferingRepository() ports.OfferingRepository {
	return &OfferingRepository{uow: u}
}

func (u *UnitOfWork) OutsourcingRepository() ports.OutsourcingRepository {
	return &OutsourcingRepository{uow: u}
}

// write applies cs immediately outside a transaction, or merges it into the pending change set.
func (u *UnitOfWork) write(ctx context.Context, source ports.EventSource, fill func(cs *changeSet)) error {
	if u.changes == nil {
		cs := newChangeSet()
		fill(cs)
		if err := u.store.apply(cs); err != nil {
			return err
		}
		if source != nil {
			u.publish(ctx, []ports.EventSource{source})
		}
		return nil
	}

	fill(u.changes)
	if source != nil && !slices.Contains(u.tracked, source) {
		u.tracked = append(u.tracked, source)
	}
	return nil
}

func (u *UnitOfWork) publish(ctx context.Context, sources []ports.EventSource) {
	for _, source := range sources {
		events := source.DomainEvents()
		source.ClearDomainEvents()
		if len(events) == 0 || u.publisher == nil {
			continue
		}
		if err := u.publisher.Publish(ctx, events...); err != nil {
			u.logger.Warn("failed to publish domain events",
				zap.Int("events", len(events)),
				zap.Error(err),
			)
		}
	}
}

func (u *UnitOfWork) lookupOrder(id int64) (orderRecord, bool) {
	if u.changes != nil {
		if rec, ok := u.changes.orders[id]; ok {
			return rec, true
		}
	}
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()
	rec, ok := u.store.orders[id]
	return rec, ok
}

func (u *UnitOfWork) allOrders() []orderRecord {
	u.store.mu.RLock()
	merged := make(map[int64]orderRecord, len(u.store.orders))
	for id, rec := range u.store.orders {
		merged[id] = rec
	}
	u.store.mu.RUnlock()

	if u.changes != nil {
		for id, rec := range u.changes.orders {
			merged[id] = rec
		}
	}
	out := make([]orderRecord, 0, len(merged))
	for _, rec := range merged {
		out = append(out, rec)
	}
	return out
}

func (u *UnitOfWork) lookupOffering(key offeringKey) (offeringRecord, bool) {
	if u.changes != nil {
		if rec, ok := u.changes.offerings[key]; ok {
			return rec, true
		}
		if _, deleted := u.changes.deletedOfferings[key]; deleted {
			return offeringRecord{}, false
		}
	}
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()
	rec, ok := u.store.offerings[key]
	return rec, ok
}

func (u *UnitOfWork) allOfferings() []offeringRecord {
	u.store.mu.RLock()
	merged := make(map[offeringKey]offeringRecord, len(u.store.offerings))
	for key, rec := range u.store.offerings {
		merged[key] = rec
	}
	u.store.mu.RUnlock()

	if u.changes != nil {
		for key := range u.changes.deletedOfferings {
			delete(merged, key)
		}
		for key, rec := range u.changes.offerings {
			merged[key] = rec
		}
	}
	out := make([]offeringRecord, 0, len(merged))
	for _, rec := range merged {
		out = append(out, rec)
	}
	return out
}

func (u *UnitOfWork) lookupRequest(id int64) (requestRecord, bool) {
	if u.changes != nil {
		if rec, ok := u.changes.requests[id]; ok {
			return rec, true
		}
	}
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()
	rec, ok := u.store.requests[id]
	return rec, ok
}

func (u *UnitOfWork) allRequests() []requestRecord {
	u.store.mu.RLock()
	merged := make(map[int64]requestRecord, len(u.store.requests))
	for id, rec := range u.store.requests {
		merged[id] = rec
	}
	u.store.mu.RUnlock()

	if u.changes != nil {
		for id, rec := range u.changes.requests {
			merged[id] = rec
		}
	}
	out := make([]requestRecord, 0, len(merged))
	for _, rec := range merged {
		out = append(out, rec)
	}
	return out
}
