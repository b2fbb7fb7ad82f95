package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/phrazzld/flipiq/internal/config"
	"github.com/phrazzld/flipiq/internal/generation"
	"github.com/phrazzld/flipiq/internal/redact"
	"google.golang.org/genai"
)

// SDKGenerator implements generation.TextGenerator with the official genai
// client.
type SDKGenerator struct {
	// client is nil when no usable API key is configured
	client *genai.Client
	model  string
	logger *slog.Logger
}

var _ generation.TextGenerator = (*SDKGenerator)(nil)

// NewSDKGenerator creates an SDKGenerator for cfg. Without a usable API key
// no client is created and every call fails with
// generation.ErrInvalidCredentials.
func NewSDKGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*SDKGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	logger = logger.With("component", "gemini_sdk", "model", cfg.ModelName)

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	g := &SDKGenerator{
		model:  cfg.ModelName,
		logger: logger,
	}
	if !HasUsableKey(cfg.GeminiAPIKey) {
		return g, nil
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     strings.TrimSpace(cfg.GeminiAPIKey),
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Transport: statusRecorder{base: http.DefaultTransport}},
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: APIVersion,
		},
	}
	if cfg.RequestTimeout > 0 {
		clientConfig.HTTPOptions.Timeout = genai.Ptr(cfg.RequestTimeout)
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %s",
			generation.ErrInvalidConfig, redact.Error(err))
	}
	g.client = client

	return g, nil
}

// GenerateContent implements generation.TextGenerator.
func (g *SDKGenerator) GenerateContent(ctx context.Context, prompt string) (text string, err error) {
	if g.client == nil {
		return "", generation.ErrInvalidCredentials
	}
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	status := new(atomic.Int32)
	ctx = context.WithValue(ctx, statusKey{}, status)

	g.logger.DebugContext(ctx, "calling Gemini through genai", "prompt_length", len(prompt))
	start := time.Now()

	// genai panics on some error bodies it cannot decode.
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", panicError(int(status.Load()), rec)
			g.logger.ErrorContext(ctx, "Gemini client panicked",
				"error", redact.Error(err),
				"duration_ms", time.Since(start).Milliseconds())
		}
	}()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(Temperature),
		TopK:            genai.Ptr(TopK),
		TopP:            genai.Ptr(TopP),
		MaxOutputTokens: MaxOutputTokens,
	})
	if err != nil {
		mapped := mapSDKError(err, int(status.Load()))
		g.logger.ErrorContext(ctx, "Gemini request failed",
			"error", redact.Error(mapped),
			"duration_ms", time.Since(start).Milliseconds())
		return "", mapped
	}

	g.logger.DebugContext(ctx, "Gemini response received",
		"duration_ms", time.Since(start).Milliseconds())

	return firstPartText(resp)
}

// firstPartText returns the text of the first part of the first candidate.
func firstPartText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrInvalidResponse)
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil || len(candidate.Content.Parts) == 0 ||
		candidate.Content.Parts[0] == nil {
		return "", fmt.Errorf("%w: first candidate has no parts", generation.ErrInvalidResponse)
	}
	text := candidate.Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("%w: first part has no text", generation.ErrInvalidResponse)
	}
	return text, nil
}

// mapSDKError translates a genai error into the generation error kinds.
// statusCode is the HTTP status seen on the wire, or 0.
func mapSDKError(err error, statusCode int) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.Code
		if code == 0 {
			code = statusCode
		}
		// genai fills Status with the HTTP status line, and Message with the
		// raw body, when the body was not a structured error.
		rawStatusLine := strings.HasPrefix(apiErr.Status, strconv.Itoa(code)+" ")
		if apiErr.Message == "" || rawStatusLine {
			return &generation.HTTPError{StatusCode: code}
		}
		return &generation.ProviderError{
			Code:    code,
			Message: apiErr.Message,
			Status:  apiErr.Status,
		}
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s", generation.ErrNetwork, redact.Error(err))
	}

	return fmt.Errorf("%w: %s", generation.ErrInvalidResponse, redact.Error(err))
}

// panicError converts a recovered genai panic into an HTTPError when a
// non-2xx status was received, and ErrInvalidResponse otherwise.
func panicError(statusCode int, rec interface{}) error {
	if statusCode != 0 && (statusCode < 200 || statusCode > 299) {
		return &generation.HTTPError{StatusCode: statusCode}
	}
	return fmt.Errorf("%w: genai client panicked: %v", generation.ErrInvalidResponse, rec)
}

type statusKey struct{}

// statusRecorder stores the response status into the *atomic.Int32 carried
// by the request context, if any.
type statusRecorder struct {
	base http.RoundTripper
}

func (s statusRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := s.base.RoundTrip(req)
	if resp != nil {
		if code, ok := req.Context().Value(statusKey{}).(*atomic.Int32); ok {
			code.Store(int32(resp.StatusCode))
		}
	}
	return resp, err
}
