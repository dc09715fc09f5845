// Package notifications publishes post and comment domain events to Redis.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"blogapi/internal/observability"

	"github.com/redis/go-redis/v9"
)

// EventsChannel is the pub/sub channel every domain event is published on.
const EventsChannel = "blog:events"

// Event types.
const (
	EventPostCreated    = "post_created"
	EventPostUpdated    = "post_updated"
	EventPostDeleted    = "post_deleted"
	EventCommentCreated = "comment_created"
	EventCommentUpdated = "comment_updated"
	EventCommentDeleted = "comment_deleted"
)

// Event is the message published on EventsChannel.
type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// Notifier provides helpers to publish events into Redis channels
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// Publish sends an event to EventsChannel. Without Redis it is a no-op.
func (n *Notifier) Publish(ctx context.Context, eventType string, payload map[string]any) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	raw, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		observability.DomainEvents.WithLabelValues(eventType, "error").Inc()
		return fmt.Errorf("marshal %s event: %w", eventType, err)
	}
	if err := n.rdb.Publish(ctx, EventsChannel, raw).Err(); err != nil {
		observability.DomainEvents.WithLabelValues(eventType, "error").Inc()
		return fmt.Errorf("publish %s event: %w", eventType, err)
	}
	observability.DomainEvents.WithLabelValues(eventType, "published").Inc()
	return nil
}
