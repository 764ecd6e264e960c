package services

import (
	"context"
	"log"

	"arenaserver/internal/metrics"
	"arenaserver/pkg/rabbitmq"
)

// Event types published after a successful mutation.
const (
	EventAccountCreated   = "account.created"
	EventAccountDeleted   = "account.deleted"
	EventCharacterCreated = "character.created"
	EventCharacterDeleted = "character.deleted"
	EventItemCreated      = "item.created"
	EventItemUpdated      = "item.updated"
	EventItemDeleted      = "item.deleted"
)

// EventPublisher publishes domain events. *rabbitmq.Client satisfies it.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event rabbitmq.Event) error
}

// publish sends an event if a publisher is configured. Failures are logged
// and never fail the request that caused the event.
func publish(ctx context.Context, publisher EventPublisher, eventType string, payload interface{}) {
	if publisher == nil {
		return
	}
	event := rabbitmq.NewEvent(eventType, payload)
	if err := publisher.PublishEvent(ctx, event); err != nil {
		metrics.EventPublishErrors.WithLabelValues(eventType).Inc()
		log.Printf("Warning: Failed to publish %s event %s: %v", eventType, event.ID, err)
		return
	}
	metrics.EventsPublished.WithLabelValues(eventType).Inc()
}
