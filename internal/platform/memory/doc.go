// Package memory provides the in-memory implementation of the store
// interfaces. All state lives for the lifetime of the process and is reset
// on launch.
package memory
