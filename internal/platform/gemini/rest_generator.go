package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/phrazzld/flipiq/internal/config"
	"github.com/phrazzld/flipiq/internal/generation"
	"github.com/phrazzld/flipiq/internal/redact"
	"resty.dev/v3"
)

// RESTGenerator implements generation.TextGenerator by calling the Gemini
// generateContent endpoint directly. The API key travels as the "key" query
// parameter.
type RESTGenerator struct {
	client *resty.Client
	apiKey string
	model  string
	logger *slog.Logger
}

var _ generation.TextGenerator = (*RESTGenerator)(nil)

// NewRESTGenerator creates a RESTGenerator for cfg. A missing API key is
// accepted; every call then fails with generation.ErrInvalidCredentials.
func NewRESTGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*RESTGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	logger = logger.With("component", "gemini_rest", "model", cfg.ModelName)

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	client.SetHeader("Content-Type", "application/json")
	client.SetLogger(restyLogger{logger: logger})
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &RESTGenerator{
		client: client,
		apiKey: strings.TrimSpace(cfg.GeminiAPIKey),
		model:  cfg.ModelName,
		logger: logger,
	}, nil
}

// Close releases the underlying HTTP client.
func (g *RESTGenerator) Close() error {
	return g.client.Close()
}

func (g *RESTGenerator) endpoint() string {
	return fmt.Sprintf("/%s/models/%s:generateContent", APIVersion, url.PathEscape(g.model))
}

// GenerateContent implements generation.TextGenerator.
func (g *RESTGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if !HasUsableKey(g.apiKey) {
		return "", generation.ErrInvalidCredentials
	}
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	g.logger.DebugContext(ctx, "calling Gemini generateContent", "prompt_length", len(prompt))
	start := time.Now()

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetBody(newGenerateContentRequest(prompt)).
		Post(g.endpoint())
	if err != nil {
		// The transport error embeds the request URL, key included.
		msg := strings.ReplaceAll(err.Error(), g.apiKey, redact.RedactedKeyPlaceholder)
		g.logger.ErrorContext(ctx, "Gemini request failed", "error", redact.String(msg))
		return "", fmt.Errorf("%w: %s", generation.ErrNetwork, msg)
	}

	body := resp.Bytes()
	g.logger.DebugContext(ctx, "Gemini response received",
		"status_code", resp.StatusCode(),
		"body_length", len(body),
		"duration_ms", time.Since(start).Milliseconds())

	if !resp.IsSuccess() {
		return "", statusError(resp.StatusCode(), body)
	}

	return extractText(body)
}

// statusError builds the error for a non-2xx response.
func statusError(statusCode int, body []byte) error {
	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != nil {
		code := apiErr.Error.Code
		if code == 0 {
			code = statusCode
		}
		return &generation.ProviderError{
			Code:    code,
			Message: apiErr.Error.Message,
			Status:  apiErr.Error.Status,
		}
	}
	return &generation.HTTPError{StatusCode: statusCode}
}

// extractText returns the text of the first part of the first candidate.
func extractText(body []byte) (string, error) {
	var envelope generateContentResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("%w: failed to decode response envelope: %v", generation.ErrInvalidResponse, err)
	}
	if len(envelope.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrInvalidResponse)
	}
	parts := envelope.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: no parts in first candidate", generation.ErrInvalidResponse)
	}
	if parts[0].Text == "" {
		return "", fmt.Errorf("%w: first part has no text", generation.ErrInvalidResponse)
	}
	return parts[0].Text, nil
}

// restyLogger routes resty's own diagnostics into slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error(redact.String(fmt.Sprintf(format, v...)), "source", "resty")
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn(redact.String(fmt.Sprintf(format, v...)), "source", "resty")
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug(redact.String(fmt.Sprintf(format, v...)), "source", "resty")
}
