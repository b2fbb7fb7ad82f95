// Package gemini implements generation.TextGenerator against Google's Gemini
// API.
//
// Two adapters are provided. RESTGenerator speaks the generateContent REST
// contract directly through a resty client and reports failures with the
// exact error kinds of the generation package. SDKGenerator goes through the
// official google.golang.org/genai client and maps its errors onto the same
// kinds. NewGenerator picks one from configuration.
//
// Neither adapter retries. When no usable API key is configured both return
// generation.ErrInvalidCredentials without touching the network, so the
// application runs on fallback flashcards.
package gemini
