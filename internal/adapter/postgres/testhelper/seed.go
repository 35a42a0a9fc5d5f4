package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

// UniqueUserID returns a user id that no other test uses.
func UniqueUserID() string {
	return "user-" + uuid.New().String()[:8]
}

// SeedReputation inserts a reputation row with the given total and version.
func SeedReputation(t *testing.T, pool *pgxpool.Pool, total int, version int64) domain.UserReputation {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rep := domain.UserReputation{
		UserID:         UniqueUserID(),
		TotalEcoPoints: total,
		Level:          domain.LevelFor(total),
		Version:        version,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_reputation (user_id, total_eco_points, level, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rep.UserID, rep.TotalEcoPoints, rep.Level, rep.Version, rep.CreatedAt, rep.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReputation: %v", err)
	}

	return rep
}

// SeedActivity inserts an activity record for userID stamped at ts.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, userID string, points int, ts time.Time) domain.ActivityRecord {
	t.Helper()

	rec := domain.ActivityRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Modality:  domain.ModalityText,
		Content:   "cycled to work",
		Advice:    "keep cycling",
		EcoPoints: points,
		Timestamp: ts.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO activity_records (id, user_id, modality, content, advice, eco_points, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.UserID, string(rec.Modality), rec.Content, rec.Advice, rec.EcoPoints, rec.Timestamp,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity: %v", err)
	}

	return rec
}
