package offeringrepo

import (
	"context"
	"errors"
	"fmt"

	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOfferingRepository implements OfferingRepository using GORM.
// Catalog entries carry no domain events and are never row-locked.
type GormOfferingRepository struct {
	db *gorm.DB
}

func NewGormOfferingRepository(db *gorm.DB) *GormOfferingRepository {
	return &GormOfferingRepository{db: db}
}

// Save inserts the entry or replaces the one stored under the same key.
func (r *GormOfferingRepository) Save(ctx context.Context, offering *catalog.Offering) error {
	if err := offering.Validate(); err != nil {
		return err
	}

	dto := fromDomain(offering)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fulfiller_id"}, {Name: "service_type"}},
		UpdateAll: true,
	}).Create(&dto).Error
}

func (r *GormOfferingRepository) Get(ctx context.Context, fulfillerID kernel.ID, serviceType kernel.ServiceType) (*catalog.Offering, error) {
	if err := errors.Join(fulfillerID.Validate(), serviceType.Validate()); err != nil {
		return nil, err
	}

	var dto OfferingDTO
	err := r.db.WithContext(ctx).
		First(&dto, "fulfiller_id = ? AND service_type = ?", fulfillerID.Int64(), serviceType.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offering", ref(fulfillerID, serviceType))
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOfferingRepository) Delete(ctx context.Context, fulfillerID kernel.ID, serviceType kernel.ServiceType) error {
	result := r.db.WithContext(ctx).
		Where("fulfiller_id = ? AND service_type = ?", fulfillerID.Int64(), serviceType.String()).
		Delete(&OfferingDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("offering", ref(fulfillerID, serviceType))
	}
	return nil
}

func (r *GormOfferingRepository) ListByFulfiller(ctx context.Context, fulfillerID kernel.ID) ([]*catalog.Offering, error) {
	return r.find(ctx, "service_type", "fulfiller_id = ?", fulfillerID.Int64())
}

func (r *GormOfferingRepository) ListByServiceType(ctx context.Context, serviceType kernel.ServiceType) ([]*catalog.Offering, error) {
	return r.find(ctx, "fulfiller_id", "service_type = ?", serviceType.String())
}

func (r *GormOfferingRepository) find(ctx context.Context, orderBy string, query string, args ...any) ([]*catalog.Offering, error) {
	var dtos []OfferingDTO
	if err := r.db.WithContext(ctx).Where(query, args...).Order(orderBy).Find(&dtos).Error; err != nil {
		return nil, err
	}

	offerings := make([]*catalog.Offering, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		offerings = append(offerings, o)
	}
	return offerings, nil
}

func ref(fulfillerID kernel.ID, serviceType kernel.ServiceType) string {
	return fmt.Sprintf("%s/%s", fulfillerID, serviceType)
}
