package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/phrazzld/flipiq/internal/config"
	"github.com/phrazzld/flipiq/internal/generation"
)

// HasUsableKey reports whether key can be sent to the API. Empty keys and
// the sample placeholder are not usable.
func HasUsableKey(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != PlaceholderAPIKey
}

// validateConfig checks the settings both adapters need. A missing API key is
// not a configuration error: it is logged and requests fail with
// generation.ErrInvalidCredentials instead.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.ModelName == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.BaseURL == "" {
		return fmt.Errorf("%w: base URL cannot be empty", generation.ErrInvalidConfig)
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base URL must be absolute", generation.ErrInvalidConfig)
	}

	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout cannot be negative", generation.ErrInvalidConfig)
	}

	if !HasUsableKey(cfg.GeminiAPIKey) {
		logger.WarnContext(ctx, "no Gemini API key configured, study guides will use fallback flashcards")
	}

	return nil
}
