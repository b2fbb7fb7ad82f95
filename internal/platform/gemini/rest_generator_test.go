package gemini

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/flipiq/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestREST(t *testing.T, baseURL, key string) *RESTGenerator {
	t.Helper()
	g, err := NewRESTGenerator(context.Background(), testLogger(), testConfig(baseURL, key))
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func TestRESTGenerator_Success(t *testing.T) {
	server := newFakeGemini(t, http.StatusOK, successBody(`[{"question":"Q","answer":"A"}]`))
	g := newTestREST(t, server.URL, testAPIKey)

	text, err := g.GenerateContent(context.Background(), "make cards")
	require.NoError(t, err)
	assert.Equal(t, `[{"question":"Q","answer":"A"}]`, text)

	req := server.last.Load()
	require.NotNil(t, req)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", req.Path)
	assert.Equal(t, testAPIKey, req.Query)
	assert.Contains(t, req.Header.Get("Content-Type"), "application/json")

	contents := req.Body["contents"].([]interface{})
	parts := contents[0].(map[string]interface{})["parts"].([]interface{})
	assert.Equal(t, "make cards", parts[0].(map[string]interface{})["text"])

	cfg := req.Body["generationConfig"].(map[string]interface{})
	assert.InDelta(t, 0.7, cfg["temperature"], 1e-6)
	assert.InDelta(t, 40, cfg["topK"], 1e-6)
	assert.InDelta(t, 0.95, cfg["topP"], 1e-6)
	assert.InDelta(t, 2048, cfg["maxOutputTokens"], 1e-6)
}

func TestRESTGenerator_NoUsableKeySkipsRequest(t *testing.T) {
	for _, key := range []string{"", "   ", PlaceholderAPIKey} {
		t.Run("key="+key, func(t *testing.T) {
			server := newFakeGemini(t, http.StatusOK, successBody("unused"))
			g := newTestREST(t, server.URL, key)

			_, err := g.GenerateContent(context.Background(), "make cards")
			assert.True(t, errors.Is(err, generation.ErrInvalidCredentials))
			assert.Zero(t, server.calls.Load())
		})
	}
}

func TestRESTGenerator_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "provider error",
			status: http.StatusBadRequest,
			body:   providerErrorBody,
			check: func(t *testing.T, err error) {
				var pe *generation.ProviderError
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, 400, pe.Code)
				assert.Equal(t, "INVALID_ARGUMENT", pe.Status)
				assert.Equal(t, "API key not valid. Please pass a valid API key.", pe.Message)
			},
		},
		{
			name:   "http error without structured body",
			status: http.StatusServiceUnavailable,
			body:   "<html>Service Unavailable</html>",
			check: func(t *testing.T, err error) {
				var he *generation.HTTPError
				require.True(t, errors.As(err, &he))
				assert.Equal(t, 503, he.StatusCode)
			},
		},
		{
			name:   "json body without error object",
			status: http.StatusInternalServerError,
			body:   `{"message":"oops"}`,
			check: func(t *testing.T, err error) {
				var he *generation.HTTPError
				require.True(t, errors.As(err, &he))
				assert.Equal(t, 500, he.StatusCode)
			},
		},
		{
			name:   "undecodable envelope",
			status: http.StatusOK,
			body:   "not json",
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, generation.ErrInvalidResponse))
			},
		},
		{
			name:   "no candidates",
			status: http.StatusOK,
			body:   `{"candidates":[]}`,
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, generation.ErrInvalidResponse))
			},
		},
		{
			name:   "candidate without parts",
			status: http.StatusOK,
			body:   `{"candidates":[{"content":{"parts":[]}}]}`,
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, generation.ErrInvalidResponse))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newFakeGemini(t, tt.status, tt.body)
			g := newTestREST(t, server.URL, testAPIKey)

			text, err := g.GenerateContent(context.Background(), "make cards")
			assert.Empty(t, text)
			require.Error(t, err)
			tt.check(t, err)
			assert.Equal(t, int32(1), server.calls.Load(), "no retry expected")
		})
	}
}

func TestRESTGenerator_NetworkErrorRedactsKey(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	g := newTestREST(t, baseURL, testAPIKey)
	_, err := g.GenerateContent(context.Background(), "make cards")

	require.Error(t, err)
	assert.True(t, errors.Is(err, generation.ErrNetwork))
	assert.NotContains(t, err.Error(), testAPIKey)
}

func TestRESTGenerator_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	cfg := testConfig(server.URL, testAPIKey)
	cfg.RequestTimeout = 50 * time.Millisecond
	g, err := NewRESTGenerator(context.Background(), testLogger(), cfg)
	require.NoError(t, err)
	defer func() { _ = g.Close() }()

	_, err = g.GenerateContent(context.Background(), "make cards")
	assert.True(t, errors.Is(err, generation.ErrNetwork))
}

func TestRESTGenerator_EmptyPrompt(t *testing.T) {
	server := newFakeGemini(t, http.StatusOK, successBody("unused"))
	g := newTestREST(t, server.URL, testAPIKey)

	_, err := g.GenerateContent(context.Background(), "")
	assert.True(t, errors.Is(err, ErrEmptyPrompt))
	assert.Zero(t, server.calls.Load())
}
