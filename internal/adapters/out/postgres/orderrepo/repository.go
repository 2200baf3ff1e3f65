package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dentallab/internal/adapters/out/postgres/pgerr"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/ports"
	"dentallab/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	orderSequence  = "orders_id_seq"
	stageSequence  = "order_stages_id_seq"
	codeConstraint = "orders_code_key"
	pkeyConstraint = "orders_pkey"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db       *gorm.DB
	tracker  aggregateTracker
	lockRows bool
}

// aggregateTracker collects aggregates whose domain events are published after commit.
type aggregateTracker interface {
	TrackAggregate(aggregate ports.EventSource)
}

// NewGormOrderRepository creates a new GORM order repository. With lockRows set, loads take a
// row lock that is held until the surrounding transaction ends.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker, lockRows bool) *GormOrderRepository {
	return &GormOrderRepository{
		db:       db,
		tracker:  tracker,
		lockRows: lockRows,
	}
}

func (r *GormOrderRepository) NextOrderID(ctx context.Context) (kernel.ID, error) {
	return r.next(ctx, orderSequence)
}

func (r *GormOrderRepository) NextStageID(ctx context.Context) (kernel.ID, error) {
	return r.next(ctx, stageSequence)
}

func (r *GormOrderRepository) next(ctx context.Context, sequence string) (kernel.ID, error) {
	var value int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval(?)", sequence).Scan(&value).Error; err != nil {
		return kernel.ID{}, fmt.Errorf("failed to reserve id from %s: %w", sequence, err)
	}
	return kernel.NewID(value)
}

// Add saves a new order and its stages.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&dto).Error; err != nil {
			return err
		}
		return saveStages(tx, dto.Stages)
	})
	switch {
	case pgerr.IsUniqueViolation(err, codeConstraint):
		return fmt.Errorf("%w: %s", ports.ErrOrderCodeTaken, aggregate.Code())
	case pgerr.IsUniqueViolation(err, pkeyConstraint):
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("order %s already exists", aggregate.ID()))
	case err != nil:
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update saves an existing order and upserts its stages.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Select("*").
			Omit(clause.Associations).
			Updates(&dto)
		if result.Error != nil {
			return pgerr.Contention(result.Error, "order "+aggregate.ID().String())
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return saveStages(tx, dto.Stages)
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func saveStages(tx *gorm.DB, stages []StageDTO) error {
	if len(stages) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "observations", "status", "completed_at"}),
	}).Create(&stages).Error
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "order", id.String(), "id = ?", id.Int64())
}

func (r *GormOrderRepository) GetByCode(ctx context.Context, code order.Code) (*order.Order, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "order", code.String(), "code = ?", code.String())
}

func (r *GormOrderRepository) GetByStageID(ctx context.Context, stageID kernel.ID) (*order.Order, error) {
	if err := stageID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "stage", stageID.String(),
		"id = (SELECT order_id FROM order_stages WHERE id = ?)", stageID.Int64())
}

func (r *GormOrderRepository) first(ctx context.Context, resource, ref string, query string, args ...any) (*order.Order, error) {
	db := r.db.WithContext(ctx)
	if r.lockRows {
		db = db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dto OrderDTO
	err := db.Preload("Stages", byPosition).Where(query, args...).First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(resource, ref)
		}
		return nil, pgerr.Contention(err, resource+" "+ref)
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) ListByRequester(ctx context.Context, requesterID kernel.ID) ([]*order.Order, error) {
	return r.find(ctx, "created_at DESC, id DESC", "requester_id = ?", requesterID.Int64())
}

func (r *GormOrderRepository) ListByFulfiller(ctx context.Context, fulfillerID kernel.ID) ([]*order.Order, error) {
	return r.find(ctx, "created_at DESC, id DESC", "fulfiller_id = ?", fulfillerID.Int64())
}

// ListOverdue retrieves open orders whose expected delivery is before today.
func (r *GormOrderRepository) ListOverdue(ctx context.Context, today time.Time) ([]*order.Order, error) {
	return r.find(ctx, "expected_delivery, id",
		"status NOT IN ? AND expected_delivery < ?", closedStatuses(), kernel.DateOf(today))
}

func (r *GormOrderRepository) find(ctx context.Context, orderBy string, query string, args ...any) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Stages", byPosition).
		Where(query, args...).
		Order(orderBy).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func closedStatuses() []string {
	var closed []string
	for _, s := range order.Statuses() {
		if s.IsClosed() {
			closed = append(closed, s.String())
		}
	}
	return closed
}
