package outsourcingrepo

import (
	"context"
	"errors"
	"fmt"

	"dentallab/internal/adapters/out/postgres/pgerr"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/core/ports"
	"dentallab/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	sequence        = "outsourcing_requests_id_seq"
	oneActiveIndex  = "outsourcing_requests_one_active_idx"
	orderForeignKey = "outsourcing_requests_order_id_fkey"
	pkeyConstraint  = "outsourcing_requests_pkey"
)

// GormOutsourcingRepository implements OutsourcingRepository using GORM.
type GormOutsourcingRepository struct {
	db       *gorm.DB
	tracker  aggregateTracker
	lockRows bool
}

type aggregateTracker interface {
	TrackAggregate(aggregate ports.EventSource)
}

// NewGormOutsourcingRepository creates a repository. With lockRows set, Get takes a row lock
// held until the surrounding transaction ends.
func NewGormOutsourcingRepository(db *gorm.DB, tracker aggregateTracker, lockRows bool) *GormOutsourcingRepository {
	return &GormOutsourcingRepository{
		db:       db,
		tracker:  tracker,
		lockRows: lockRows,
	}
}

func (r *GormOutsourcingRepository) NextID(ctx context.Context) (kernel.ID, error) {
	var value int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval(?)", sequence).Scan(&value).Error; err != nil {
		return kernel.ID{}, fmt.Errorf("failed to reserve id from %s: %w", sequence, err)
	}
	return kernel.NewID(value)
}

// Add inserts a new request. The partial unique index rejects a second active request for
// the same order.
func (r *GormOutsourcingRepository) Add(ctx context.Context, request *outsourcing.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	err := r.db.WithContext(ctx).Create(&dto).Error
	switch {
	case pgerr.IsUniqueViolation(err, oneActiveIndex):
		return errs.NewOutsourcingAlreadyActiveError(request.OrderID())
	case pgerr.IsUniqueViolation(err, pkeyConstraint):
		return errs.NewValueIsInvalidErrorWithCause("outsourcing request id",
			fmt.Errorf("request %s already exists", request.ID()))
	case pgerr.IsForeignKeyViolation(err, orderForeignKey):
		return errs.NewObjectNotFoundErrorWithCause("order", request.OrderID().String(), err)
	case err != nil:
		return err
	}

	r.tracker.TrackAggregate(request)
	return nil
}

func (r *GormOutsourcingRepository) Update(ctx context.Context, request *outsourcing.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error, oneActiveIndex) {
			return errs.NewOutsourcingAlreadyActiveError(request.OrderID())
		}
		return pgerr.Contention(result.Error, "outsourcing request "+request.ID().String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outsourcing request", request.ID().String())
	}

	r.tracker.TrackAggregate(request)
	return nil
}

func (r *GormOutsourcingRepository) Get(ctx context.Context, id kernel.ID) (*outsourcing.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if r.lockRows {
		db = db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dto RequestDTO
	if err := db.First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("outsourcing request", id.String())
		}
		return nil, pgerr.Contention(err, "outsourcing request "+id.String())
	}

	return toDomain(dto)
}

func (r *GormOutsourcingRepository) GetActiveByOrder(ctx context.Context, orderID kernel.ID) (*outsourcing.Request, error) {
	var dto RequestDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status IN ?", orderID.Int64(), activeStatuses()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active outsourcing request", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOutsourcingRepository) ListByOrder(ctx context.Context, orderID kernel.ID) ([]*outsourcing.Request, error) {
	return r.find(ctx, "order_id = ?", orderID.Int64())
}

func (r *GormOutsourcingRepository) ListByRequesting(ctx context.Context, fulfillerID kernel.ID) ([]*outsourcing.Request, error) {
	return r.find(ctx, "requesting_fulfiller_id = ?", fulfillerID.Int64())
}

func (r *GormOutsourcingRepository) ListByExecuting(ctx context.Context, fulfillerID kernel.ID) ([]*outsourcing.Request, error) {
	return r.find(ctx, "executing_fulfiller_id = ?", fulfillerID.Int64())
}

func (r *GormOutsourcingRepository) find(ctx context.Context, query string, args ...any) ([]*outsourcing.Request, error) {
	var dtos []RequestDTO
	if err := r.db.WithContext(ctx).Where(query, args...).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	requests := make([]*outsourcing.Request, 0, len(dtos))
	for _, dto := range dtos {
		req, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func activeStatuses() []string {
	var active []string
	for _, s := range outsourcing.Statuses() {
		if s.IsActive() {
			active = append(active, s.String())
		}
	}
	return active
}
