// Package reputation maintains each user's running eco-points total and
// level. Writers race through optimistic version checks and retry.
package reputation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/ecovoice-backend/internal/config"
	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

type reputationRepo interface {
	Find(ctx context.Context, userID string) (domain.UserReputation, bool, error)
	Insert(ctx context.Context, rep domain.UserReputation) error
	UpdateIfVersion(ctx context.Context, rep domain.UserReputation, expected int64) error
}

// Service is the reputation ledger.
type Service struct {
	repo reputationRepo
	cfg  config.LedgerConfig
	now  func() time.Time
	log  *slog.Logger
}

// NewService creates a new reputation ledger.
func NewService(log *slog.Logger, repo reputationRepo, cfg config.LedgerConfig) *Service {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = time.Millisecond
	}
	return &Service{
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
		log:  log.With("service", "reputation"),
	}
}

// Get returns the stored reputation of a user.
func (s *Service) Get(ctx context.Context, userID string) (domain.UserReputation, bool, error) {
	rep, found, err := s.repo.Find(ctx, userID)
	if err != nil {
		return domain.UserReputation{}, false, fmt.Errorf("find reputation: %w", err)
	}
	return rep, found, nil
}

// ApplyDelta adds delta to the user's total, creating the user at level 1
// on first contact, and raises the level when a threshold is crossed.
// Levels never go down.
//
// Returns domain.ErrConflict if the row kept moving for every attempt.
func (s *Service) ApplyDelta(ctx context.Context, userID string, delta int) (domain.UserReputation, error) {
	attempts := 0
	rep, err := retry.DoValue(ctx, s.backoff(), func(ctx context.Context) (domain.UserReputation, error) {
		attempts++
		return s.applyOnce(ctx, userID, delta)
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrAlreadyExists) {
			s.log.WarnContext(ctx, "reputation update contended",
				slog.String("user_id", userID),
				slog.Int("attempts", attempts),
			)
			return domain.UserReputation{}, fmt.Errorf("apply delta after %d attempts: %w", attempts, domain.ErrConflict)
		}
		return domain.UserReputation{}, fmt.Errorf("apply delta: %w", err)
	}

	if attempts > 1 {
		s.log.DebugContext(ctx, "reputation update retried", slog.Int("attempts", attempts))
	}
	return rep, nil
}

func (s *Service) applyOnce(ctx context.Context, userID string, delta int) (domain.UserReputation, error) {
	now := s.now().UTC()

	current, found, err := s.repo.Find(ctx, userID)
	if err != nil {
		return domain.UserReputation{}, err
	}

	if !found {
		rep := domain.NewReputation(userID, delta, now)
		if err := s.repo.Insert(ctx, rep); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				// Lost the creation race; the next attempt takes the update path.
				return domain.UserReputation{}, retry.RetryableError(err)
			}
			return domain.UserReputation{}, err
		}
		s.log.InfoContext(ctx, "reputation created",
			slog.String("user_id", userID),
			slog.Int("total", rep.TotalEcoPoints),
		)
		return rep, nil
	}

	next := current.Apply(delta, now)
	if err := s.repo.UpdateIfVersion(ctx, next, current.Version); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.UserReputation{}, retry.RetryableError(err)
		}
		return domain.UserReputation{}, err
	}

	if next.Level != current.Level {
		s.log.InfoContext(ctx, "level up",
			slog.String("user_id", userID),
			slog.Int("from", current.Level),
			slog.Int("to", next.Level),
		)
	}
	return next, nil
}

// backoff is rebuilt per call since go-retry backoffs are stateful.
func (s *Service) backoff() retry.Backoff {
	b := retry.NewExponential(s.cfg.BaseBackoff)
	if s.cfg.MaxBackoff > 0 {
		b = retry.WithCappedDuration(s.cfg.MaxBackoff, b)
	}
	b = retry.WithJitterPercent(20, b)
	return retry.WithMaxRetries(uint64(s.cfg.MaxAttempts-1), b)
}
