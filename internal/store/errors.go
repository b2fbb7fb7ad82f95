package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity is rejected before being stored.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrStudyGuideNotFound indicates that the requested study guide does not exist.
	ErrStudyGuideNotFound = fmt.Errorf("%w: study guide", ErrNotFound)
)
