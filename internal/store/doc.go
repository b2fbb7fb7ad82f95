// Package store defines the interfaces over the application's authoritative
// collections: study guides and community chat messages. Both collections
// are append-only. Implementations announce every append through the
// events package so views can re-render.
package store
