package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flipiq/internal/config"
	"github.com/phrazzld/flipiq/internal/generation"
)

// Backend names accepted in llm.backend.
const (
	BackendREST = "rest"
	BackendSDK  = "sdk"
)

// NewGenerator creates the generation.TextGenerator selected by
// cfg.Backend. An empty backend selects REST.
func NewGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
) (generation.TextGenerator, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	logger.InfoContext(ctx, "initializing Gemini generator",
		"backend", cfg.Backend,
		"model", cfg.ModelName,
		"api_key_present", HasUsableKey(cfg.GeminiAPIKey))

	switch cfg.Backend {
	case "", BackendREST:
		g, err := NewRESTGenerator(ctx, logger, cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	case BackendSDK:
		g, err := NewSDKGenerator(ctx, logger, cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", generation.ErrInvalidConfig, cfg.Backend)
	}
}
