// Package task provides the application's concurrency model.
//
// A Dispatcher owns a single goroutine that plays the role of the UI thread:
// every mutation that affects rendering is posted to it and applied in order.
// A Runner executes slow work, such as a study guide generation request, on
// its own goroutine and then rejoins the Dispatcher to publish the result, so
// callers are never blocked and results always land on the owning goroutine.
package task
