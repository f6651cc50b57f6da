package events

import "time"

// Subscription lifecycle event types.
const (
	SubscriptionCreated   = "SUBSCRIPTION_CREATED"
	SubscriptionCancelled = "SUBSCRIPTION_CANCELLED"
	SubscriptionRenewed   = "SUBSCRIPTION_RENEWED"
	SubscriptionPaused    = "SUBSCRIPTION_PAUSED"
	SubscriptionResumed   = "SUBSCRIPTION_RESUMED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SUBSCRIPTION_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the standard Event implementation.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewSubscriptionEvent builds a lifecycle event with the common payload shape.
func NewSubscriptionEvent(eventType string, data map[string]interface{}) BaseEvent {
	now := time.Now()
	if data == nil {
		data = map[string]interface{}{}
	}
	data["occurred_at"] = now
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: now,
	}
}
