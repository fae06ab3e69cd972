package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/felixgeelhaar/catalog/internal/shared/domain"
)

// Publisher sends serialized domain events to a message broker.
type Publisher interface {
	// Publish sends payload under routingKey.
	Publish(ctx context.Context, routingKey string, payload []byte) error

	// Close releases the broker connection.
	Close() error
}

// PublishEvents wraps each event in an envelope and publishes it in order.
// Every event is attempted; the returned error joins all failures.
func PublishEvents(ctx context.Context, p Publisher, events []domain.DomainEvent) error {
	var errs []error
	for _, event := range events {
		envelope, err := domain.NewEventEnvelope(event)
		if err != nil {
			errs = append(errs, fmt.Errorf("encode %s: %w", event.RoutingKey(), err))
			continue
		}
		payload, err := json.Marshal(envelope)
		if err != nil {
			errs = append(errs, fmt.Errorf("encode %s: %w", event.RoutingKey(), err))
			continue
		}
		if err := p.Publish(ctx, event.RoutingKey(), payload); err != nil {
			errs = append(errs, fmt.Errorf("publish %s: %w", event.RoutingKey(), err))
		}
	}
	return errors.Join(errs...)
}
