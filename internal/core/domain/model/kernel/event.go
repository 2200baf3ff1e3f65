package kernel

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact recorded by an aggregate during a state change.
// Events are published only after the surrounding unit of work commits.
type DomainEvent struct {
	id            uuid.UUID
	name          string
	aggregateType string
	aggregateID   ID
	occurredAt    time.Time
	payload       map[string]any
}

func NewDomainEvent(name, aggregateType string, aggregateID ID, occurredAt time.Time, payload map[string]any) DomainEvent {
	return DomainEvent{
		id:            uuid.New(),
		name:          name,
		aggregateType: aggregateType,
		aggregateID:   aggregateID,
		occurredAt:    occurredAt.UTC(),
		payload:       payload,
	}
}

func (e DomainEvent) ID() uuid.UUID           { return e.id }
func (e DomainEvent) Name() string            { return e.name }
func (e DomainEvent) AggregateType() string   { return e.aggregateType }
func (e DomainEvent) AggregateID() ID         { return e.aggregateID }
func (e DomainEvent) OccurredAt() time.Time   { return e.occurredAt }
func (e DomainEvent) Payload() map[string]any { return e.payload }

// EventRecorder is embedded by aggregate roots to accumulate their events.
type EventRecorder struct {
	events []DomainEvent
}

func (r *EventRecorder) Record(event DomainEvent) {
	r.events = append(r.events, event)
}

// DomainEvents returns the events recorded since the last clear.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
