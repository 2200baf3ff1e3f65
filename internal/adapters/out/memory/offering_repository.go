package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
)

type OfferingRepository struct {
	uow *UnitOfWork
}

func (r *OfferingRepository) Save(ctx context.Context, offering *catalog.Offering) error {
	if err := offering.Validate(); err != nil {
		return err
	}
	rec := offeringToRecord(offering)
	return r.uow.write(ctx, nil, func(cs *changeSet) {
		delete(cs.deletedOfferings, rec.key())
		cs.offerings[rec.key()] = rec
	})
}

func (r *OfferingRepository) Get(_ context.Context, fulfillerID kernel.ID, serviceType kernel.ServiceType) (*catalog.Offering, error) {
	if err := fulfillerID.Validate(); err != nil {
		return nil, err
	}
	rec, ok := r.uow.lookupOffering(offeringKey{fulfillerID: fulfillerID.Int64(), serviceType: serviceType})
	if !ok {
		return nil, errs.NewObjectNotFoundError("offering", offeringRef(fulfillerID, serviceType))
	}
	return rec.toDomain()
}

func (r *OfferingRepository) Delete(ctx context.Context, fulfillerID kernel.ID, serviceType kernel.ServiceType) error {
	key := offeringKey{fulfillerID: fulfillerID.Int64(), serviceType: serviceType}
	if _, ok := r.uow.lookupOffering(key); !ok {
		return errs.NewObjectNotFoundError("offering", offeringRef(fulfillerID, serviceType))
	}
	return r.uow.write(ctx, nil, func(cs *changeSet) {
		delete(cs.offerings, key)
		cs.deletedOfferings[key] = struct{}{}
	})
}

func (r *OfferingRepository) ListByFulfiller(_ context.Context, fulfillerID kernel.ID) ([]*catalog.Offering, error) {
	return r.list(func(rec offeringRecord) bool {
		return rec.FulfillerID.IsEqual(fulfillerID)
	}, func(a, b offeringRecord) int {
		return cmp.Compare(a.ServiceType, b.ServiceType)
	})
}

func (r *OfferingRepository) ListByServiceType(_ context.Context, serviceType kernel.ServiceType) ([]*catalog.Offering, error) {
	return r.list(func(rec offeringRecord) bool {
		return rec.ServiceType == serviceType
	}, func(a, b offeringRecord) int {
		return cmp.Compare(a.FulfillerID.Int64(), b.FulfillerID.Int64())
	})
}

func (r *OfferingRepository) list(keep func(offeringRecord) bool, compare func(a, b offeringRecord) int) ([]*catalog.Offering, error) {
	records := slices.DeleteFunc(r.uow.allOfferings(), func(rec offeringRecord) bool { return !keep(rec) })
	slices.SortFunc(records, compare)

	offerings := make([]*catalog.Offering, 0, len(records))
	for _, rec := range records {
		o, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		offerings = append(offerings, o)
	}
	return offerings, nil
}

func offeringRef(fulfillerID kernel.ID, serviceType kernel.ServiceType) string {
	return fmt.Sprintf("%s/%s", fulfillerID, serviceType)
}
