package ports

import (
	"context"

	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
)

// OfferingRepository stores catalog entries keyed by (fulfiller, service type).
type OfferingRepository interface {
	// Save inserts or replaces the entry for the offering's key.
	Save(ctx context.Context, offering *catalog.Offering) error

	// Get returns the entry, or an ObjectNotFoundError.
	Get(ctx context.Context, fulfillerID kernel.ID, serviceType kernel.ServiceType) (*catalog.Offering, error)

	// Delete removes the entry. Existing orders keep their captured quote.
	Delete(ctx context.Context, fulfillerID kernel.ID, serviceType kernel.ServiceType) error

	// ListByFulfiller returns the fulfiller's entries ordered by service type.
	ListByFulfiller(ctx context.Context, fulfillerID kernel.ID) ([]*catalog.Offering, error)

	// ListByServiceType returns every fulfiller's entry for the service type, ordered by fulfiller.
	ListByServiceType(ctx context.Context, serviceType kernel.ServiceType) ([]*catalog.Offering, error)
}
