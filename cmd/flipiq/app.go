package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/phrazzld/flipiq/internal/config"
	"github.com/phrazzld/flipiq/internal/events"
	"github.com/phrazzld/flipiq/internal/generation"
	"github.com/phrazzld/flipiq/internal/platform/gemini"
	"github.com/phrazzld/flipiq/internal/platform/memory"
	"github.com/phrazzld/flipiq/internal/service"
	"github.com/phrazzld/flipiq/internal/task"
)

// application holds the shared dependencies of every command and releases
// them on cleanup.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	location *time.Location

	eventEmitter *events.InMemoryEventEmitter
	dispatcher   *task.Dispatcher
	runner       *task.Runner
	store        *memory.Store

	text      generation.TextGenerator
	generator *generation.Service

	guides    *service.StudyGuideService
	community *service.CommunityService
}

// newApplication wires the application from cfg. The dispatcher is started;
// call cleanup to stop it.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	loc, err := cfg.Calendar.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid calendar timezone: %w", err)
	}

	app := &application{
		config:   cfg,
		logger:   logger,
		location: loc,
	}

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.dispatcher = task.NewDispatcher(task.DefaultDispatcherConfig(), logger)
	app.dispatcher.Start()
	app.runner = task.NewRunner(app.dispatcher, logger)
	app.store = memory.NewSeededStore(app.eventEmitter, logger, time.Now())

	app.text, err = gemini.NewGenerator(ctx, logger.With("component", "llm_generator"), cfg.LLM)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}

	prompts, err := generation.NewPromptBuilder(cfg.LLM.PromptTemplatePath)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	app.generator, err = generation.NewService(app.text, prompts, logger,
		generation.WithLocation(loc),
		generation.WithEmitter(app.eventEmitter),
		generation.WithExecutor(app.dispatcher),
	)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	app.guides, err = service.NewStudyGuideService(app.generator, app.store, app.runner, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create study guide service: %w", err)
	}

	app.community, err = service.NewCommunityService(app.store, app.dispatcher, cfg.Community.Username, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create community service: %w", err)
	}

	logger.Debug("application initialized",
		"llm_backend", cfg.LLM.Backend,
		"model", cfg.LLM.ModelName,
		"api_key_present", gemini.HasUsableKey(cfg.LLM.GeminiAPIKey),
		"timezone", loc.String())
	return app, nil
}

// cleanup waits for running generations, stops the dispatcher and closes the
// LLM client.
func (app *application) cleanup() {
	if app.runner != nil {
		app.runner.Wait()
	}
	if app.dispatcher != nil {
		app.dispatcher.Stop()
	}
	if closer, ok := app.text.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			app.logger.Error("failed to close LLM client", "error", err)
		}
	}
	app.logger.Debug("application shutdown completed")
}
