package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-todo-lists/internal/logger"
	"github.com/sbilibin2017/gw-todo-lists/internal/models"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// EventPublisher delivers domain events to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event) error
}

// emit publishes a domain event. Delivery failures are logged and never fail the operation.
func emit(ctx context.Context, pub EventPublisher, eventType string, actorID, entityID int64) {
	if pub == nil {
		return
	}

	event := models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		ActorID:   actorID,
		EntityID:  entityID,
	}
	if err := pub.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Errorw("failed to publish event", "event_id", event.EventID, "type", eventType, "error", err)
	}
}
