package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/ports"
	"dentallab/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository over the Store. Aggregate locking is left to
// the AggregateLocker, so Get behaves the same inside and outside a transaction.
type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) NextOrderID(_ context.Context) (kernel.ID, error) {
	return nextID(&r.uow.store.orderSeq), nil
}

func (r *OrderRepository) NextStageID(_ context.Context) (kernel.ID, error) {
	return nextID(&r.uow.store.stageSeq), nil
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.uow.lookupOrder(aggregate.ID().Int64()); exists {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("order %s already exists", aggregate.ID()))
	}
	for _, other := range r.uow.allOrders() {
		if other.Params.Code.String() == aggregate.Code().String() {
			return fmt.Errorf("%w: %s is used by order %s", ports.ErrOrderCodeTaken, aggregate.Code(), other.Params.ID)
		}
	}

	rec := orderToRecord(aggregate)
	return r.uow.write(ctx, aggregate, func(cs *changeSet) {
		cs.orders[aggregate.ID().Int64()] = rec
	})
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.uow.lookupOrder(aggregate.ID().Int64()); !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	rec := orderToRecord(aggregate)
	return r.uow.write(ctx, aggregate, func(cs *changeSet) {
		cs.orders[aggregate.ID().Int64()] = rec
	})
}

func (r *OrderRepository) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	rec, ok := r.uow.lookupOrder(id.Int64())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return rec.toDomain()
}

func (r *OrderRepository) GetByCode(_ context.Context, code order.Code) (*order.Order, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}
	for _, rec := range r.uow.allOrders() {
		if rec.Params.Code.String() == code.String() {
			return rec.toDomain()
		}
	}
	return nil, errs.NewObjectNotFoundError("order", code.String())
}

func (r *OrderRepository) GetByStageID(_ context.Context, stageID kernel.ID) (*order.Order, error) {
	if err := stageID.Validate(); err != nil {
		return nil, err
	}
	for _, rec := range r.uow.allOrders() {
		if rec.hasStage(stageID) {
			return rec.toDomain()
		}
	}
	return nil, errs.NewObjectNotFoundError("stage", stageID.String())
}

func (r *OrderRepository) ListByRequester(_ context.Context, requesterID kernel.ID) ([]*order.Order, error) {
	return r.list(func(rec orderRecord) bool {
		return rec.Params.Requester.ID().IsEqual(requesterID)
	}, newestFirst)
}

func (r *OrderRepository) ListByFulfiller(_ context.Context, fulfillerID kernel.ID) ([]*order.Order, error) {
	return r.list(func(rec orderRecord) bool {
		return rec.Params.Fulfiller.ID().IsEqual(fulfillerID)
	}, newestFirst)
}

func (r *OrderRepository) ListOverdue(_ context.Context, today time.Time) ([]*order.Order, error) {
	day := kernel.DateOf(today)
	return r.list(func(rec orderRecord) bool {
		expected := rec.Params.ExpectedDelivery
		return expected != nil && !rec.Status.IsClosed() && expected.Before(day)
	}, func(a, b orderRecord) int {
		if c := a.Params.ExpectedDelivery.Compare(*b.Params.ExpectedDelivery); c != 0 {
			return c
		}
		return cmp.Compare(a.Params.ID.Int64(), b.Params.ID.Int64())
	})
}

func (r *OrderRepository) list(keep func(orderRecord) bool, compare func(a, b orderRecord) int) ([]*order.Order, error) {
	records := slices.DeleteFunc(r.uow.allOrders(), func(rec orderRecord) bool { return !keep(rec) })
	slices.SortFunc(records, compare)

	orders := make([]*order.Order, 0, len(records))
	for _, rec := range records {
		o, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func newestFirst(a, b orderRecord) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.Params.ID.Int64(), a.Params.ID.Int64())
}
