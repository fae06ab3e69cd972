package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/felixgeelhaar/catalog/internal/shared/domain"
)

// InProcessEventBus delivers events synchronously to registered consumers.
// It is the Publisher used when no broker is configured.
type InProcessEventBus struct {
	registry *ConsumerRegistry
	logger   *slog.Logger
	mu       sync.Mutex
}

// NewInProcessEventBus creates a bus with an empty registry.
func NewInProcessEventBus(logger *slog.Logger) *InProcessEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &InProcessEventBus{
		registry: NewConsumerRegistry(logger),
		logger:   logger,
	}
}

// RegisterConsumer registers an event consumer.
func (b *InProcessEventBus) RegisterConsumer(consumer EventConsumer) {
	b.registry.Register(consumer)
}

// Registry returns the underlying consumer registry.
func (b *InProcessEventBus) Registry() *ConsumerRegistry {
	return b.registry
}

// Publish decodes the envelope and dispatches it. Consumer failures are
// logged and do not fail the publish: the write that raised the event has
// already been committed.
func (b *InProcessEventBus) Publish(ctx context.Context, routingKey string, payload []byte) error {
	var event domain.EventEnvelope
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("decode event %s: %w", routingKey, err)
	}
	if event.RoutingKey == "" {
		event.RoutingKey = routingKey
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	start := time.Now()
	err := b.registry.Dispatch(ctx, &event)
	duration := time.Since(start)

	if err != nil {
		b.logger.Error("event dispatch failed",
			"routing_key", routingKey,
			"event_id", event.EventID,
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		return nil
	}

	b.logger.Debug("event dispatched",
		"routing_key", routingKey,
		"event_id", event.EventID,
		"duration_ms", duration.Milliseconds(),
	)
	return nil
}

// Close is a no-op.
func (b *InProcessEventBus) Close() error {
	return nil
}

// LoggingConsumer writes every event it receives to a structured log.
type LoggingConsumer struct {
	eventTypes []string
	logger     *slog.Logger
}

// NewLoggingConsumer creates a consumer for eventTypes.
func NewLoggingConsumer(logger *slog.Logger, eventTypes ...string) *LoggingConsumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingConsumer{eventTypes: eventTypes, logger: logger}
}

func (c *LoggingConsumer) EventTypes() []string { return c.eventTypes }

func (c *LoggingConsumer) Handle(ctx context.Context, event *domain.EventEnvelope) error {
	c.logger.InfoContext(ctx, "domain event",
		"routing_key", event.RoutingKey,
		"event_id", event.EventID,
		"aggregate_type", event.AggregateType,
		"aggregate_id", event.AggregateID,
		"occurred_at", event.OccurredAt,
	)
	return nil
}
