// Package shared holds the request and response plumbing used by the HTTP
// handlers and middleware: trace IDs, the request-scoped logger, JSON
// decoding with validation, and JSON error bodies.
package shared
