package api

import (
	"github.com/phrazzld/flipiq/internal/views"
)

// CreateStudyGuideRequest is the payload for POST /api/guides.
type CreateStudyGuideRequest struct {
	Subject string `json:"subject" validate:"required,max=100"`
	Topic   string `json:"topic"   validate:"required,max=200"`
}

// SendMessageRequest is the payload for POST /api/messages.
type SendMessageRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// SubjectsResponse lists the subjects offered when creating a guide.
type SubjectsResponse struct {
	Subjects []string `json:"subjects"`
}

// GuideListResponse is the guide list view.
type GuideListResponse struct {
	Guides []views.GuideSummary `json:"guides"`
}

// ThreadResponse is the community chat view.
type ThreadResponse struct {
	Messages []views.Bubble `json:"messages"`
}
