package ports

import (
	"context"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/outsourcing"
)

// OutsourcingRepository stores outsourcing requests. Terminal requests are kept as history.
type OutsourcingRepository interface {
	NextID(ctx context.Context) (kernel.ID, error)

	// Add persists a new request. Adding a second active request for the same order fails
	// with an OutsourcingAlreadyActive error.
	Add(ctx context.Context, request *outsourcing.Request) error

	Update(ctx context.Context, request *outsourcing.Request) error

	// Get retrieves a request by id. Inside a transaction the row is locked.
	Get(ctx context.Context, id kernel.ID) (*outsourcing.Request, error)

	// GetActiveByOrder returns the order's active request, or an ObjectNotFoundError.
	GetActiveByOrder(ctx context.Context, orderID kernel.ID) (*outsourcing.Request, error)

	// ListByOrder returns every request of the order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.ID) ([]*outsourcing.Request, error)

	ListByRequesting(ctx context.Context, fulfillerID kernel.ID) ([]*outsourcing.Request, error)

	ListByExecuting(ctx context.Context, fulfillerID kernel.ID) ([]*outsourcing.Request, error)
}
