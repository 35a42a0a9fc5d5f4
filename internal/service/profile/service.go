// Package profile serves the read-only view of a user's reputation and
// latest activities.
package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

type reputationReader interface {
	Get(ctx context.Context, userID string) (domain.UserReputation, bool, error)
}

type activityLister interface {
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.ActivityRecord, error)
}

// Service assembles user profiles.
type Service struct {
	reputation reputationReader
	activities activityLister
	log        *slog.Logger
}

// NewService creates a new profile service.
func NewService(log *slog.Logger, reputation reputationReader, activities activityLister) *Service {
	return &Service{
		reputation: reputation,
		activities: activities,
		log:        log.With("service", "profile"),
	}
}

// GetProfile returns the user's reputation with the most recent activities,
// newest first. A user without a reputation row is domain.ErrNotFound.
func (s *Service) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	if userID == "" {
		return domain.Profile{}, domain.NewValidationError("userId", "required")
	}

	rep, found, err := s.reputation.Get(ctx, userID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	if !found {
		return domain.Profile{}, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}

	recent, err := s.activities.ListRecent(ctx, userID, domain.RecentActivityLimit)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	if recent == nil {
		recent = []domain.ActivityRecord{}
	}

	return domain.Profile{Reputation: rep, RecentActivities: recent}, nil
}
