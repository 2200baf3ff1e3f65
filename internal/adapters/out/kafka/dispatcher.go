package kafka

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/ports"

	"go.uber.org/zap"
)

const (
	defaultDeliveryTimeout = 10 * time.Second
	dispatchQueueSize      = 1024
)

var (
	ErrDispatcherBusy   = errors.New("kafka: event queue is full")
	ErrDispatcherClosed = errors.New("kafka: dispatcher is closed")
)

// Dispatcher hands committed domain events to a publisher on one background worker, so
// Publish returns as soon as the batch is queued. Batches are delivered in the order they were
// queued and every delivery attempt is bounded by the delivery timeout. Failed batches are
// logged and dropped.
type Dispatcher struct {
	next    ports.EventPublisher
	timeout time.Duration
	logger  *zap.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan []kernel.DomainEvent
	done   chan struct{}
}

// NewDispatcher starts the worker. A non-positive timeout falls back to ten seconds.
func NewDispatcher(next ports.EventPublisher, timeout time.Duration, logger *zap.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultDeliveryTimeout
	}
	d := &Dispatcher{
		next:    next,
		timeout: timeout,
		logger:  logger.With(zap.String("component", "event_dispatcher")),
		queue:   make(chan []kernel.DomainEvent, dispatchQueueSize),
		done:    make(chan struct{}),
	}
	go d.run()
	return d
}

// Publish queues events without waiting for the broker. It fails only when the queue is full
// or the dispatcher is closed.
func (d *Dispatcher) Publish(_ context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrDispatcherClosed
	}

	select {
	case d.queue <- slices.Clone(events):
		return nil
	default:
		return ErrDispatcherBusy
	}
}

// Close stops accepting events and waits until the queued batches are delivered or ctx ends.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for batch := range d.queue {
		d.deliver(batch)
	}
}

func (d *Dispatcher) deliver(batch []kernel.DomainEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.next.Publish(ctx, batch...); err != nil {
		d.logger.Warn("failed to deliver domain events",
			zap.Int("events", len(batch)),
			zap.String("first_event", batch[0].Name()),
			zap.Error(err),
		)
	}
}
