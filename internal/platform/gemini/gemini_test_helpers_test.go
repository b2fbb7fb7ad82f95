package gemini

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/phrazzld/flipiq/internal/config"
)

const testAPIKey = "AIzaTestKey0123456789abcdefghijklmnopq"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(baseURL, apiKey string) config.LLMConfig {
	return config.LLMConfig{
		Backend:      BackendREST,
		GeminiAPIKey: apiKey,
		ModelName:    "gemini-2.0-flash",
		BaseURL:      baseURL,
	}
}

// capturedRequest is what the fake Gemini endpoint saw.
type capturedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   map[string]interface{}
}

// fakeGemini is an httptest server standing in for the Gemini endpoint.
type fakeGemini struct {
	*httptest.Server
	calls atomic.Int32
	last  atomic.Pointer[capturedRequest]
}

func newFakeGemini(t *testing.T, status int, body string) *fakeGemini {
	t.Helper()
	f := &fakeGemini{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)

		captured := &capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query().Get("key"),
			Header: r.Header.Clone(),
		}
		_ = json.NewDecoder(r.Body).Decode(&captured.Body)
		f.last.Store(captured)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(f.Close)
	return f
}

func successBody(text string) string {
	b, _ := json.Marshal(map[string]interface{}{
		"candidates": []interface{}{
			map[string]interface{}{
				"content": map[string]interface{}{
					"parts": []interface{}{map[string]interface{}{"text": text}},
					"role":  "model",
				},
				"finishReason": "STOP",
			},
		},
	})
	return string(b)
}

const providerErrorBody = `{"error":{"code":400,"message":"API key not valid. Please pass a valid API key.","status":"INVALID_ARGUMENT"}}`
