package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Domain events recorded by aggregates saved through its repositories are published
// only after a successful Commit.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and publishes collected domain events.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and drops collected domain events.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// OfferingRepository returns an OfferingRepository bound to the current transaction.
	OfferingRepository() OfferingRepository

	// OutsourcingRepository returns an OutsourcingRepository bound to the current transaction.
	OutsourcingRepository() OutsourcingRepository
}
