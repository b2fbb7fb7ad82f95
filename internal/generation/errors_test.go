package generation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{name: "nil", err: nil, contains: ""},
		{name: "credentials", err: ErrInvalidCredentials, contains: "No valid Gemini API key"},
		{
			name:     "provider error",
			err:      fmt.Errorf("wrapped: %w", &ProviderError{Code: 400, Message: "API key not valid", Status: "INVALID_ARGUMENT"}),
			contains: "API key not valid",
		},
		{name: "http error", err: &HTTPError{StatusCode: 503}, contains: "status 503"},
		{name: "network", err: fmt.Errorf("%w: dial tcp: timeout", ErrNetwork), contains: "Could not reach"},
		{name: "invalid response", err: ErrInvalidResponse, contains: "could not be read"},
		{name: "empty result", err: ErrEmptyResult, contains: "no usable flashcards"},
		{name: "other", err: errors.New("boom"), contains: "Something went wrong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := UserMessage(tt.err)
			if tt.err == nil {
				assert.Empty(t, msg)
				return
			}
			assert.Contains(t, msg, tt.contains)
		})
	}
}

func TestErrorStrings(t *testing.T) {
	assert.Equal(t,
		"language model API error 400 (INVALID_ARGUMENT): bad",
		(&ProviderError{Code: 400, Message: "bad", Status: "INVALID_ARGUMENT"}).Error())
	assert.Equal(t, "language model API error 500: bad", (&ProviderError{Code: 500, Message: "bad"}).Error())
	assert.Equal(t, "language model HTTP error: 502 Bad Gateway", (&HTTPError{StatusCode: 502}).Error())
}
