// Package api is the local HTTP/JSON shell of FlipIQ. It routes requests with
// chi, validates request bodies, renders the view models from internal/views
// and maps service errors to status codes and safe messages.
//
// The server is meant for one local user and binds to the loopback address
// by default.
package api
