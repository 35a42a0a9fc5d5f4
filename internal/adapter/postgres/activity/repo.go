// Package activity implements the activity log repository using PostgreSQL.
package activity

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ecovoice-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

const table = "activity_records"

var columns = []string{"id", "user_id", "modality", "content", "advice", "eco_points", "created_at"}

// Repo provides activity record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    string    `db:"user_id"`
	Modality  string    `db:"modality"`
	Content   string    `db:"content"`
	Advice    string    `db:"advice"`
	EcoPoints int       `db:"eco_points"`
	CreatedAt time.Time `db:"created_at"`
}

// Insert appends a record. Records are never updated.
func (r *Repo) Insert(ctx context.Context, rec domain.ActivityRecord) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(rec.ID, rec.UserID, string(rec.Modality), rec.Content, rec.Advice, rec.EcoPoints, rec.Timestamp).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert activity_record: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "activity_record", rec.ID.String())
	}
	return nil
}

// ListRecent returns the newest records of a user, newest first.
// Returns an empty slice if the user has none.
func (r *Repo) ListRecent(ctx context.Context, userID string, limit int) ([]domain.ActivityRecord, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activity_records: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.pool, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list activity_records: %w", err)
	}

	records := make([]domain.ActivityRecord, len(rows))
	for i, rw := range rows {
		records[i] = domain.ActivityRecord{
			ID:        rw.ID,
			UserID:    rw.UserID,
			Modality:  domain.Modality(rw.Modality),
			Content:   rw.Content,
			Advice:    rw.Advice,
			EcoPoints: rw.EcoPoints,
			Timestamp: rw.CreatedAt,
		}
	}
	return records, nil
}
