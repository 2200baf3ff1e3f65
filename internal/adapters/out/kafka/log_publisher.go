package kafka

import (
	"context"

	"dentallab/internal/core/domain/model/kernel"

	"go.uber.org/zap"
)

// LogPublisher writes the envelopes it would publish to the log. It is used when no brokers are
// configured.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With(zap.String("component", "event_log"))}
}

func (p *LogPublisher) Publish(_ context.Context, events ...kernel.DomainEvent) error {
	for _, e := range events {
		p.logger.Info("domain event",
			zap.String("event_id", e.ID().String()),
			zap.String("name", e.Name()),
			zap.String("aggregate_type", e.AggregateType()),
			zap.Int64("aggregate_id", e.AggregateID().Int64()),
			zap.Time("occurred_at", e.OccurredAt()),
			zap.Any("payload", e.Payload()),
		)
	}
	return nil
}
