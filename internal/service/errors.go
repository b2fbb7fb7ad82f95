package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/flipiq/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check them with errors.Is; the API layer maps them to HTTP status codes.
var (
	// ErrStudyGuideNotFound indicates that the requested study guide does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrStudyGuideNotFound = errors.New("study guide not found")

	// ErrNilDependency is returned by constructors given a nil collaborator.
	ErrNilDependency = errors.New("required dependency is nil")
)

// ServiceError wraps an unexpected failure with the operation that hit it.
type ServiceError struct {
	// Service is the service that failed (e.g., "study_guide", "community")
	Service string
	// Operation is the operation that failed (e.g., "create_study_guide")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// newServiceError wraps err in a ServiceError. Known sentinel errors are
// mapped to their service-level equivalents and returned without wrapping.
func newServiceError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrStudyGuideNotFound) || errors.Is(err, store.ErrStudyGuideNotFound) {
		return ErrStudyGuideNotFound
	}

	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

func nilDependency(service, name string) error {
	return &ServiceError{
		Service:   service,
		Operation: "create_service",
		Message:   name + " cannot be nil",
		Err:       ErrNilDependency,
	}
}
