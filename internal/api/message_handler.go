package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/flipiq/internal/api/shared"
	"github.com/phrazzld/flipiq/internal/domain"
	"github.com/phrazzld/flipiq/internal/views"
)

// CommunityService is the part of service.CommunityService the handlers use.
type CommunityService interface {
	SendMessage(ctx context.Context, text string) (*domain.ChatMessage, error)
	Messages(ctx context.Context) []domain.ChatMessage
}

// MessageHandler serves the community chat thread.
type MessageHandler struct {
	community CommunityService
	loc       *time.Location
	logger    *slog.Logger
}

// NewMessageHandler creates a MessageHandler. Times are shown in loc.
func NewMessageHandler(community CommunityService, loc *time.Location, logger *slog.Logger) *MessageHandler {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MessageHandler{
		community: community,
		loc:       loc,
		logger:    logger.With("component", "message_handler"),
	}
}

// ListMessages handles GET /api/messages.
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages := h.community.Messages(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, ThreadResponse{
		Messages: views.Thread(messages, h.loc),
	})
}

// SendMessage handles POST /api/messages. Blank messages are rejected with
// 400 and leave the thread unchanged.
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.LoggerFrom(r.Context(), h.logger).Debug("invalid message request body", "error", err)
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	msg, err := h.community.SendMessage(r.Context(), req.Message)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to send message")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, views.Thread([]domain.ChatMessage{*msg}, h.loc)[0])
}
