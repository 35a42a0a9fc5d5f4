// Package activity records every analyzed activity in an append-only log.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

type activityRepo interface {
	Insert(ctx context.Context, rec domain.ActivityRecord) error
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.ActivityRecord, error)
}

// Service is the activity recorder.
type Service struct {
	repo activityRepo
	now  func() time.Time
	log  *slog.Logger
}

// NewService creates a new activity service.
func NewService(log *slog.Logger, repo activityRepo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		log:  log.With("service", "activity"),
	}
}

// Record appends one activity and returns the stored record.
func (s *Service) Record(
	ctx context.Context,
	userID string,
	modality domain.Modality,
	content, advice string,
	ecoPoints int,
) (domain.ActivityRecord, error) {
	rec := domain.ActivityRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Modality:  modality,
		Content:   content,
		Advice:    advice,
		EcoPoints: ecoPoints,
		Timestamp: s.now().UTC(),
	}

	if err := s.repo.Insert(ctx, rec); err != nil {
		return domain.ActivityRecord{}, fmt.Errorf("record activity: %w", err)
	}

	s.log.DebugContext(ctx, "activity recorded",
		slog.String("activity_id", rec.ID.String()),
		slog.String("modality", string(modality)),
		slog.Int("eco_points", ecoPoints),
	)
	return rec, nil
}

// ListRecent returns up to limit records of a user, newest first.
func (s *Service) ListRecent(ctx context.Context, userID string, limit int) ([]domain.ActivityRecord, error) {
	if limit <= 0 {
		limit = domain.RecentActivityLimit
	}
	recs, err := s.repo.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return recs, nil
}
