package eventbus

import (
	"context"

	"github.com/felixgeelhaar/catalog/internal/shared/domain"
)

// EventConsumer handles specific event types.
type EventConsumer interface {
	// EventTypes returns the routing keys this consumer handles,
	// e.g. ["catalog.category.created"].
	EventTypes() []string

	// Handle processes the event.
	Handle(ctx context.Context, event *domain.EventEnvelope) error
}
