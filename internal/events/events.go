package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types published by the application. Observers subscribe to the
// subset they render.
const (
	// TypeGuideAdded is emitted after a study guide is appended to the store.
	TypeGuideAdded = "store.guide_added"

	// TypeMessageAdded is emitted after a chat message is appended to the store.
	TypeMessageAdded = "store.message_added"

	// TypeGenerationStatus is emitted whenever the generator's loading flag or
	// last error message changes.
	TypeGenerationStatus = "generation.status"
)

// Event is a change notification. The payload is the JSON form of the value
// that changed, so observers stay decoupled from the publishing package.
type Event struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type identifies what changed, one of the Type* constants
	Type string `json:"type"`

	// Payload contains the event-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *Event) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEvent creates a new Event with the specified type and payload.
func NewEvent(eventType string, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now(),
	}, nil
}

// EventHandler defines an interface for components that observe events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *Event) error
}

// HandlerFunc adapts a plain function to EventHandler.
type HandlerFunc func(ctx context.Context, event *Event) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *Event) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows the store and generator to publish changes without knowing
// which views render them.
type EventEmitter interface {
	// EmitEvent publishes the given event to every handler subscribed to its type.
	EmitEvent(ctx context.Context, event *Event) error
}

// Publish builds an event from payload and emits it. A nil emitter is a no-op.
func Publish(ctx context.Context, emitter EventEmitter, eventType string, payload interface{}) error {
	if emitter == nil {
		return nil
	}
	event, err := NewEvent(eventType, payload)
	if err != nil {
		return err
	}
	return emitter.EmitEvent(ctx, event)
}
