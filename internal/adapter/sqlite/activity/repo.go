// Package activity implements the activity log repository using SQLite.
package activity

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/ecovoice-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

const table = "activity_records"

var columns = []string{"id", "user_id", "modality", "content", "advice", "eco_points", "created_at"}

// Repo provides activity record persistence backed by SQLite.
type Repo struct {
	db *sql.DB
}

// New creates a new activity repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	Modality  string `db:"modality"`
	Content   string `db:"content"`
	Advice    string `db:"advice"`
	EcoPoints int    `db:"eco_points"`
	CreatedAt string `db:"created_at"`
}

// Insert appends a record.
func (r *Repo) Insert(ctx context.Context, rec domain.ActivityRecord) error {
	query, args, err := sqlite.Builder().
		Insert(table).
		Columns(columns...).
		Values(rec.ID.String(), rec.UserID, string(rec.Modality), rec.Content, rec.Advice, rec.EcoPoints, sqlite.FormatTime(rec.Timestamp)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert activity_record: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "activity_record", rec.ID.String())
	}
	return nil
}

// ListRecent returns the newest records of a user, newest first.
func (r *Repo) ListRecent(ctx context.Context, userID string, limit int) ([]domain.ActivityRecord, error) {
	query, args, err := sqlite.Builder().
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
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list activity_records: %w", err)
	}

	records := make([]domain.ActivityRecord, 0, len(rows))
	for _, rw := range rows {
		rec, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func toDomain(rw row) (domain.ActivityRecord, error) {
	id, err := uuid.Parse(rw.ID)
	if err != nil {
		return domain.ActivityRecord{}, fmt.Errorf("activity_record id %q: %w", rw.ID, err)
	}
	ts, err := sqlite.ParseTime(rw.CreatedAt)
	if err != nil {
		return domain.ActivityRecord{}, err
	}
	return domain.ActivityRecord{
		ID:        id,
		UserID:    rw.UserID,
		Modality:  domain.Modality(rw.Modality),
		Content:   rw.Content,
		Advice:    rw.Advice,
		EcoPoints: rw.EcoPoints,
		Timestamp: ts,
	}, nil
}
