package ports

import (
	"context"

	"dentallab/internal/core/domain/model/kernel"
)

// EventPublisher delivers domain events to the outside world. Publishing happens after the
// state change is committed; a failure is reported but never undoes the change. Units of work
// publish while the aggregate lock is still held, so the publisher they get must not wait on a
// broker.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}

// EventSource is an aggregate that records domain events.
type EventSource interface {
	DomainEvents() []kernel.DomainEvent
	ClearDomainEvents()
}
