package generation

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the generation package
var (
	// ErrInvalidCredentials is returned when no usable API key is configured.
	// No request is made in that case.
	ErrInvalidCredentials = errors.New("invalid or missing API credentials")

	// ErrInvalidResponse is returned when the LLM response envelope cannot be
	// decoded or carries no candidate text
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrNetwork is returned when the request could not complete at the transport level
	ErrNetwork = errors.New("network error contacting language model")

	// ErrEmptyResult is returned when the response text yields no usable flashcards
	ErrEmptyResult = errors.New("no usable flashcards in language model response")

	// ErrUnexpected is returned for any failure outside the kinds above,
	// including a panic recovered from an adapter
	ErrUnexpected = errors.New("unexpected error during study guide generation")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// ProviderError is a non-2xx response whose body carried the provider's
// structured error object.
type ProviderError struct {
	Code    int
	Message string
	Status  string
}

func (e *ProviderError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("language model API error %d (%s): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("language model API error %d: %s", e.Code, e.Message)
}

// HTTPError is a non-2xx response without a decodable error body.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("language model HTTP error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// UserMessage converts a generation error into text suitable for display.
// It never exposes request details such as the API key.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var providerErr *ProviderError
	var httpErr *HTTPError

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return "No valid Gemini API key is configured. Showing sample flashcards instead."
	case errors.As(err, &providerErr):
		return fmt.Sprintf("The Gemini API returned an error: %s. Showing sample flashcards instead.", providerErr.Message)
	case errors.As(err, &httpErr):
		return fmt.Sprintf("The Gemini API request failed with status %d. Showing sample flashcards instead.", httpErr.StatusCode)
	case errors.Is(err, ErrNetwork):
		return "Could not reach the Gemini API. Check your connection. Showing sample flashcards instead."
	case errors.Is(err, ErrInvalidResponse):
		return "The Gemini API returned a response that could not be read. Showing sample flashcards instead."
	case errors.Is(err, ErrEmptyResult):
		return "The generated content contained no usable flashcards. Showing sample flashcards instead."
	default:
		return "Something went wrong while generating flashcards. Showing sample flashcards instead."
	}
}
