// Package events implements the observer contract used to keep views in sync
// with application state.
//
// The store and the generator publish an Event after every mutation that
// affects rendering. Views subscribe to the event types they care about and
// are notified synchronously, on the goroutine that performed the mutation,
// in the order they subscribed.
//
// The primary components are:
// - Event: a typed change notification with a JSON payload
// - EventHandler: interface for observers
// - InMemoryEventEmitter: the subscription registry and dispatcher
package events
