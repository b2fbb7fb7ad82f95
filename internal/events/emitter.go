package events

import (
	"context"
	"log/slog"
	"sync"
)

// subscription pairs a handler with the event types it wants.
// An empty type set matches every event.
type subscription struct {
	id      uint64
	handler EventHandler
	types   map[string]struct{}
}

func (s subscription) wants(eventType string) bool {
	if len(s.types) == 0 {
		return true
	}
	_, ok := s.types[eventType]
	return ok
}

// InMemoryEventEmitter keeps subscriptions in memory and dispatches events to
// them synchronously, in subscription order, on the emitting goroutine.
type InMemoryEventEmitter struct {
	subs   []subscription
	nextID uint64
	mu     sync.RWMutex
	logger *slog.Logger
}

// NewInMemoryEventEmitter creates a new instance of InMemoryEventEmitter.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	return &InMemoryEventEmitter{
		subs:   make([]subscription, 0),
		logger: logger.With("component", "in_memory_event_emitter"),
	}
}

// Subscribe registers handler for the given event types (all types when none
// are given) and returns a function that removes the subscription.
func (e *InMemoryEventEmitter) Subscribe(handler EventHandler, eventTypes ...string) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	sub := subscription{id: e.nextID, handler: handler}
	if len(eventTypes) > 0 {
		sub.types = make(map[string]struct{}, len(eventTypes))
		for _, t := range eventTypes {
			sub.types[t] = struct{}{}
		}
	}
	e.subs = append(e.subs, sub)
	e.logger.Debug("registered event handler",
		"subscription_id", sub.id,
		"event_types", eventTypes,
		"handler_count", len(e.subs))

	var once sync.Once
	return func() {
		once.Do(func() { e.remove(sub.id) })
	}
}

func (e *InMemoryEventEmitter) remove(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, s := range e.subs {
		if s.id == id {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			return
		}
	}
}

// EmitEvent publishes the given event to the handlers subscribed to its type.
// If any handler returns an error, the event is still delivered to the others
// and the first error encountered is returned.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *Event) error {
	e.mu.RLock()
	handlers := make([]EventHandler, 0, len(e.subs))
	for _, s := range e.subs {
		if s.wants(event.Type) {
			handlers = append(handlers, s.handler)
		}
	}
	e.mu.RUnlock()

	e.logger.Debug("emitting event",
		"event_id", event.ID,
		"event_type", event.Type,
		"handler_count", len(handlers))

	var firstErr error
	for i, handler := range handlers {
		if err := handler.HandleEvent(ctx, event); err != nil {
			e.logger.Error("handler failed to process event",
				"error", err,
				"handler_index", i,
				"event_id", event.ID,
				"event_type", event.Type)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
