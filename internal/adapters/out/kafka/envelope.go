// Package kafka publishes domain events to a Kafka topic.
//
// Each event is one record. The record key is "<aggregateType>:<aggregateID>" so every event of
// one aggregate lands on the same partition and keeps its order. The value is a JSON envelope.
package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"dentallab/internal/core/domain/model/kernel"
)

// Envelope is the wire form of a domain event.
type Envelope struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	AggregateType string         `json:"aggregateType"`
	AggregateID   int64          `json:"aggregateId"`
	OccurredAt    time.Time      `json:"occurredAt"`
	Payload       map[string]any `json:"payload"`
}

func NewEnvelope(e kernel.DomainEvent) Envelope {
	return Envelope{
		ID:            e.ID().String(),
		Name:          e.Name(),
		AggregateType: e.AggregateType(),
		AggregateID:   e.AggregateID().Int64(),
		OccurredAt:    e.OccurredAt(),
		Payload:       e.Payload(),
	}
}

func recordKey(e kernel.DomainEvent) []byte {
	return []byte(fmt.Sprintf("%s:%d", e.AggregateType(), e.AggregateID().Int64()))
}

func encode(e kernel.DomainEvent) ([]byte, error) {
	return json.Marshal(NewEnvelope(e))
}
