package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

type profileService interface {
	GetProfile(ctx context.Context, userID string) (domain.Profile, error)
}

// ProfileHandler serves user profiles.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type profileResponse struct {
	User             userResponse       `json:"user"`
	RecentActivities []activityResponse `json:"recentActivities"`
}

type userResponse struct {
	UserID         string    `json:"userId"`
	TotalEcoPoints int       `json:"totalEcoPoints"`
	Level          int       `json:"level"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type activityResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	ActivityType string    `json:"activityType"`
	Content      string    `json:"content"`
	Advice       string    `json:"advice"`
	EcoPoints    int       `json:"ecoPoints"`
	Timestamp    time.Time `json:"timestamp"`
}

// Get handles GET /api/users/{userId}.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProfile(r.Context(), r.PathValue("userId"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

func toProfileResponse(p domain.Profile) profileResponse {
	acts := make([]activityResponse, 0, len(p.RecentActivities))
	for _, a := range p.RecentActivities {
		acts = append(acts, activityResponse{
			ID:           a.ID.String(),
			UserID:       a.UserID,
			ActivityType: string(a.Modality),
			Content:      a.Content,
			Advice:       a.Advice,
			EcoPoints:    a.EcoPoints,
			Timestamp:    a.Timestamp,
		})
	}

	return profileResponse{
		User: userResponse{
			UserID:         p.Reputation.UserID,
			TotalEcoPoints: p.Reputation.TotalEcoPoints,
			Level:          p.Reputation.Level,
			CreatedAt:      p.Reputation.CreatedAt,
			UpdatedAt:      p.Reputation.UpdatedAt,
		},
		RecentActivities: acts,
	}
}
