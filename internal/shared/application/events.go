package application

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/catalog/internal/shared/domain"
	"github.com/felixgeelhaar/catalog/internal/shared/infrastructure/eventbus"
)

// DispatchEvents publishes the pending events of aggregate and clears them.
// Call it after the unit of work has committed. A publish failure is logged
// and does not fail the operation, since the state change is already durable.
func DispatchEvents(ctx context.Context, publisher eventbus.Publisher, logger *slog.Logger, aggregate domain.AggregateRoot) {
	events := aggregate.PullDomainEvents()
	if publisher == nil || len(events) == 0 {
		return
	}

	if err := eventbus.PublishEvents(ctx, publisher, events); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.WarnContext(ctx, "failed to publish domain events",
			"aggregate_id", aggregate.EntityID().String(),
			"count", len(events),
			"error", err,
		)
	}
}
