// Package ports defines the contracts between the ordering engine and its infrastructure:
// repositories, the unit of work, event publishing and per-aggregate locking.
package ports

import (
	"context"
	"errors"
	"time"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
)

// ErrOrderCodeTaken is returned by OrderRepository.Add when another order already uses the code.
var ErrOrderCodeTaken = errors.New("order code is already taken")

// OrderRepository defines the persistence contract for order aggregates, stages included.
type OrderRepository interface {
	// NextOrderID reserves an identifier for a new order.
	NextOrderID(ctx context.Context) (kernel.ID, error)

	// NextStageID reserves an identifier for a new stage.
	NextStageID(ctx context.Context) (kernel.ID, error)

	// Add persists a new order with its stages.
	// The order code must be unique; a clash fails with ErrOrderCodeTaken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, inserting stages added since it was loaded.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Inside a transaction the order row is locked until
	// commit or rollback.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetByCode retrieves an order by its human-readable code.
	GetByCode(ctx context.Context, code order.Code) (*order.Order, error)

	// GetByStageID retrieves the order owning the stage. Locks like Get.
	GetByStageID(ctx context.Context, stageID kernel.ID) (*order.Order, error)

	// ListByRequester returns the requester's orders, newest first.
	ListByRequester(ctx context.Context, requesterID kernel.ID) ([]*order.Order, error)

	// ListByFulfiller returns the fulfiller's orders, newest first.
	ListByFulfiller(ctx context.Context, fulfillerID kernel.ID) ([]*order.Order, error)

	// ListOverdue returns open orders whose expected delivery is before today,
	// oldest expected delivery first.
	ListOverdue(ctx context.Context, today time.Time) ([]*order.Order, error)
}
