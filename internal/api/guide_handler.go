package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/flipiq/internal/api/shared"
	"github.com/phrazzld/flipiq/internal/domain"
	"github.com/phrazzld/flipiq/internal/generation"
	"github.com/phrazzld/flipiq/internal/views"
)

// StudyGuideService is the part of service.StudyGuideService the handlers use.
type StudyGuideService interface {
	CreateStudyGuide(ctx context.Context, subject, topic string) (*domain.StudyGuide, error)
	StudyGuides(ctx context.Context) []*domain.StudyGuide
	StudyGuide(ctx context.Context, id uuid.UUID) (*domain.StudyGuide, error)
	SessionsOn(ctx context.Context, day time.Time, loc *time.Location) []domain.StudySession
}

// StatusProvider exposes the generator's observable state.
type StatusProvider interface {
	Status() generation.Status
}

// GuideHandler serves study guides, their review sessions and the calendar.
type GuideHandler struct {
	guides StudyGuideService
	status StatusProvider
	loc    *time.Location
	now    func() time.Time
	logger *slog.Logger
}

// NewGuideHandler creates a GuideHandler. Dates are shown in loc.
func NewGuideHandler(
	guides StudyGuideService,
	status StatusProvider,
	loc *time.Location,
	now func() time.Time,
	logger *slog.Logger,
) *GuideHandler {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GuideHandler{
		guides: guides,
		status: status,
		loc:    loc,
		now:    now,
		logger: logger.With("component", "guide_handler"),
	}
}

// Status handles GET /api/status.
func (h *GuideHandler) Status(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.status.Status())
}

// Subjects handles GET /api/subjects.
func (h *GuideHandler) Subjects(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, SubjectsResponse{Subjects: views.Subjects})
}

// ListGuides handles GET /api/guides.
func (h *GuideHandler) ListGuides(w http.ResponseWriter, r *http.Request) {
	guides := h.guides.StudyGuides(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, GuideListResponse{
		Guides: views.GuideList(guides, h.loc),
	})
}

// CreateGuide handles POST /api/guides. It responds once the guide has been
// generated and stored; failures of the language model still yield a guide
// built from sample flashcards.
func (h *GuideHandler) CreateGuide(w http.ResponseWriter, r *http.Request) {
	log := shared.LoggerFrom(r.Context(), h.logger)

	var req CreateStudyGuideRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Debug("invalid create guide request body", "error", err)
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	guide, err := h.guides.CreateStudyGuide(r.Context(), req.Subject, req.Topic)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create study guide")
		return
	}

	log.Info("study guide created via API",
		"guide_id", guide.ID,
		"flashcard_count", len(guide.Flashcards))
	shared.RespondWithJSON(w, r, http.StatusCreated, guide)
}

// GetGuide handles GET /api/guides/{id}.
func (h *GuideHandler) GetGuide(w http.ResponseWriter, r *http.Request) {
	guide, ok := h.lookup(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, guide)
}

// Review handles GET /api/guides/{id}/review?index=&answer=.
func (h *GuideHandler) Review(w http.ResponseWriter, r *http.Request) {
	guide, ok := h.lookup(w, r)
	if !ok {
		return
	}

	index, err := queryInt(r, "index", 0)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	answer, err := queryBool(r, "answer", false)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	review := views.NewReview(guide)
	review.Seek(index, answer)
	shared.RespondWithJSON(w, r, http.StatusOK, review.State())
}

// Calendar handles GET /api/calendar?date=YYYY-MM-DD. The date defaults to today.
func (h *GuideHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	date, err := queryDate(r, "date", now, h.loc)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	cal := views.NewCalendar(date, h.loc)
	shared.RespondWithJSON(w, r, http.StatusOK, cal.Render(r.Context(), h.guides, now))
}

func (h *GuideHandler) lookup(w http.ResponseWriter, r *http.Request) (*domain.StudyGuide, bool) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, false
	}

	guide, err := h.guides.StudyGuide(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve study guide")
		return nil, false
	}
	return guide, true
}
