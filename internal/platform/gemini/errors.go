package gemini

import "errors"

// PlaceholderAPIKey is the value shipped in sample configuration. It is
// treated the same as a missing key.
const PlaceholderAPIKey = "YOUR_GEMINI_API_KEY"

// Error definitions for the gemini package.
var (
	// ErrEmptyPrompt is returned when GenerateContent is called with an empty prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)
