package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	apimiddleware "github.com/phrazzld/flipiq/internal/api/middleware"
)

// RouterConfig carries everything NewRouter wires together.
type RouterConfig struct {
	Guides    StudyGuideService
	Status    StatusProvider
	Community CommunityService

	// CORSAllowedOrigins enables CORS for the listed origins. Empty disables it.
	CORSAllowedOrigins []string

	// Location is the time zone dates and times are shown in.
	Location *time.Location

	// Now overrides the clock; nil means time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// NewRouter builds the HTTP handler for the local API.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.NewTraceMiddleware(logger))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
			ExposedHeaders: []string{"X-Request-Id"},
		}).Handler)
	}

	guides := NewGuideHandler(cfg.Guides, cfg.Status, cfg.Location, cfg.Now, logger)
	messages := NewMessageHandler(cfg.Community, cfg.Location, logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", guides.Status)
		r.Get("/subjects", guides.Subjects)

		r.Get("/guides", guides.ListGuides)
		r.Post("/guides", guides.CreateGuide)
		r.Get("/guides/{id}", guides.GetGuide)
		r.Get("/guides/{id}/review", guides.Review)

		r.Get("/calendar", guides.Calendar)

		r.Get("/messages", messages.ListMessages)
		r.Post("/messages", messages.SendMessage)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
