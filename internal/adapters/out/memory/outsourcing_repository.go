package memory

import (
	"cmp"
	"context"
	"slices"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/pkg/errs"
)

type OutsourcingRepository struct {
	uow *UnitOfWork
}

func (r *OutsourcingRepository) NextID(_ context.Context) (kernel.ID, error) {
	return nextID(&r.uow.store.requestSeq), nil
}

func (r *OutsourcingRepository) Add(ctx context.Context, request *outsourcing.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}
	if request.IsActive() {
		if _, err := r.GetActiveByOrder(ctx, request.OrderID()); err == nil {
			return errs.NewOutsourcingAlreadyActiveError(request.OrderID())
		}
	}

	rec := requestToRecord(request)
	return r.uow.write(ctx, request, func(cs *changeSet) {
		cs.requests[request.ID().Int64()] = rec
	})
}

func (r *OutsourcingRepository) Update(ctx context.Context, request *outsourcing.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}
	if _, ok := r.uow.lookupRequest(request.ID().Int64()); !ok {
		return errs.NewObjectNotFoundError("outsourcing request", request.ID().String())
	}

	rec := requestToRecord(request)
	return r.uow.write(ctx, request, func(cs *changeSet) {
		cs.requests[request.ID().Int64()] = rec
	})
}

func (r *OutsourcingRepository) Get(_ context.Context, id kernel.ID) (*outsourcing.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	rec, ok := r.uow.lookupRequest(id.Int64())
	if !ok {
		return nil, errs.NewObjectNotFoundError("outsourcing request", id.String())
	}
	return rec.toDomain()
}

func (r *OutsourcingRepository) GetActiveByOrder(_ context.Context, orderID kernel.ID) (*outsourcing.Request, error) {
	for _, rec := range r.uow.allRequests() {
		if rec.isActive() && rec.Params.OrderID.IsEqual(orderID) {
			return rec.toDomain()
		}
	}
	return nil, errs.NewObjectNotFoundError("active outsourcing request", orderID.String())
}

func (r *OutsourcingRepository) ListByOrder(_ context.Context, orderID kernel.ID) ([]*outsourcing.Request, error) {
	return r.list(func(rec requestRecord) bool { return rec.Params.OrderID.IsEqual(orderID) })
}

func (r *OutsourcingRepository) ListByRequesting(_ context.Context, fulfillerID kernel.ID) ([]*outsourcing.Request, error) {
	return r.list(func(rec requestRecord) bool { return rec.Params.RequestingFulfillerID.IsEqual(fulfillerID) })
}

func (r *OutsourcingRepository) ListByExecuting(_ context.Context, fulfillerID kernel.ID) ([]*outsourcing.Request, error) {
	return r.list(func(rec requestRecord) bool { return rec.Params.ExecutingFulfillerID.IsEqual(fulfillerID) })
}

// list returns matching requests oldest first.
func (r *OutsourcingRepository) list(keep func(requestRecord) bool) ([]*outsourcing.Request, error) {
	records := slices.DeleteFunc(r.uow.allRequests(), func(rec requestRecord) bool { return !keep(rec) })
	slices.SortFunc(records, func(a, b requestRecord) int {
		if c := a.Params.CreatedAt.Compare(b.Params.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Params.ID.Int64(), b.Params.ID.Int64())
	})

	requests := make([]*outsourcing.Request, 0, len(records))
	for _, rec := range records {
		req, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}
