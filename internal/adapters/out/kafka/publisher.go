package kafka

import (
	"context"
	"time"

	"dentallab/internal/core/domain/model/kernel"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"
)

const eventNameHeader = "event-name"

type producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
	// DeliveryTimeout caps how long a record may wait for acknowledgement, retries included.
	DeliveryTimeout time.Duration
}

// Publisher writes domain events to Kafka synchronously, waiting for all in-sync replicas.
// Callers holding locks go through a Dispatcher instead.
type Publisher struct {
	client producer
	topic  string
	logger *zap.Logger
}

func NewPublisher(cfg Config, logger *zap.Logger) (*Publisher, error) {
	deliveryTimeout := cfg.DeliveryTimeout
	if deliveryTimeout <= 0 {
		deliveryTimeout = defaultDeliveryTimeout
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.Topic),
		kgo.ProduceRequestTimeout(deliveryTimeout),
		kgo.RecordDeliveryTimeout(deliveryTimeout),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ClientID(cfg.ClientID),
	)
	if err != nil {
		return nil, err
	}
	return newPublisher(client, cfg.Topic, logger), nil
}

func newPublisher(client producer, topic string, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		topic:  topic,
		logger: logger.With(zap.String("component", "kafka_publisher"), zap.String("topic", topic)),
	}
}

func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	records := make([]*kgo.Record, 0, len(events))
	for _, e := range events {
		value, err := encode(e)
		if err != nil {
			return err
		}
		records = append(records, &kgo.Record{
			Topic: p.topic,
			Key:   recordKey(e),
			Value: value,
			Headers: []kgo.RecordHeader{
				{Key: eventNameHeader, Value: []byte(e.Name())},
			},
		})
	}

	if err := p.client.ProduceSync(ctx, records...).FirstErr(); err != nil {
		return err
	}

	p.logger.Debug("published domain events", zap.Int("count", len(records)))
	return nil
}

func (p *Publisher) Close() {
	p.client.Close()
}
