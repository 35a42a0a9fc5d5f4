// Package reputation implements the reputation ledger storage using SQLite.
package reputation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/ecovoice-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

const table = "user_reputation"

var columns = []string{"user_id", "total_eco_points", "level", "version", "created_at", "updated_at"}

// Repo provides reputation persistence backed by SQLite.
type Repo struct {
	db *sql.DB
}

// New creates a new reputation repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

type row struct {
	UserID         string `db:"user_id"`
	TotalEcoPoints int    `db:"total_eco_points"`
	Level          int    `db:"level"`
	Version        int64  `db:"version"`
	CreatedAt      string `db:"created_at"`
	UpdatedAt      string `db:"updated_at"`
}

// Find returns the reputation of a user. found is false, with a nil error,
// if the user has never been scored.
func (r *Repo) Find(ctx context.Context, userID string) (rep domain.UserReputation, found bool, err error) {
	query, args, err := sqlite.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return rep, false, fmt.Errorf("build get user_reputation: %w", err)
	}

	var rw row
	if err := sqlscan.Get(ctx, r.db, &rw, query, args...); err != nil {
		err = sqlite.MapError(err, "user_reputation", userID)
		if errors.Is(err, domain.ErrNotFound) {
			return rep, false, nil
		}
		return rep, false, err
	}

	created, err := sqlite.ParseTime(rw.CreatedAt)
	if err != nil {
		return rep, false, err
	}
	updated, err := sqlite.ParseTime(rw.UpdatedAt)
	if err != nil {
		return rep, false, err
	}

	return domain.UserReputation{
		UserID:         rw.UserID,
		TotalEcoPoints: rw.TotalEcoPoints,
		Level:          rw.Level,
		Version:        rw.Version,
		CreatedAt:      created,
		UpdatedAt:      updated,
	}, true, nil
}

// Insert creates the first row of a user, or returns domain.ErrAlreadyExists.
func (r *Repo) Insert(ctx context.Context, rep domain.UserReputation) error {
	query, args, err := sqlite.Builder().
		Insert(table).
		Columns(columns...).
		Values(rep.UserID, rep.TotalEcoPoints, rep.Level, rep.Version, sqlite.FormatTime(rep.CreatedAt), sqlite.FormatTime(rep.UpdatedAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user_reputation: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "user_reputation", rep.UserID)
	}
	return nil
}

// UpdateIfVersion overwrites the row only if its version still equals
// expected, otherwise returns domain.ErrConflict.
func (r *Repo) UpdateIfVersion(ctx context.Context, rep domain.UserReputation, expected int64) error {
	query, args, err := sqlite.Builder().
		Update(table).
		Set("total_eco_points", rep.TotalEcoPoints).
		Set("level", rep.Level).
		Set("version", rep.Version).
		Set("updated_at", sqlite.FormatTime(rep.UpdatedAt)).
		Where(sq.Eq{"user_id": rep.UserID, "version": expected}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update user_reputation: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "user_reputation", rep.UserID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("user_reputation %s: rows affected: %w", rep.UserID, err)
	}
	if n == 0 {
		return fmt.Errorf("user_reputation %s version %d: %w", rep.UserID, expected, domain.ErrConflict)
	}
	return nil
}
