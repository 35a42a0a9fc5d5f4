// Package reputation implements the reputation ledger storage using PostgreSQL.
// Updates are guarded by a version column; callers retry on domain.ErrConflict.
package reputation

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ecovoice-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

const table = "user_reputation"

var columns = []string{"user_id", "total_eco_points", "level", "version", "created_at", "updated_at"}

// Repo provides reputation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reputation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	UserID         string    `db:"user_id"`
	TotalEcoPoints int       `db:"total_eco_points"`
	Level          int       `db:"level"`
	Version        int64     `db:"version"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Find returns the reputation of a user. found is false, with a nil error,
// if the user has never been scored.
func (r *Repo) Find(ctx context.Context, userID string) (rep domain.UserReputation, found bool, err error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return domain.UserReputation{}, false, fmt.Errorf("build get user_reputation: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, r.pool, &rw, query, args...); err != nil {
		err = postgres.MapError(err, "user_reputation", userID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.UserReputation{}, false, nil
		}
		return domain.UserReputation{}, false, err
	}

	return domain.UserReputation{
		UserID:         rw.UserID,
		TotalEcoPoints: rw.TotalEcoPoints,
		Level:          rw.Level,
		Version:        rw.Version,
		CreatedAt:      rw.CreatedAt,
		UpdatedAt:      rw.UpdatedAt,
	}, true, nil
}

// Insert creates the first row of a user.
// Returns domain.ErrAlreadyExists if another writer created it first.
func (r *Repo) Insert(ctx context.Context, rep domain.UserReputation) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(rep.UserID, rep.TotalEcoPoints, rep.Level, rep.Version, rep.CreatedAt, rep.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user_reputation: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user_reputation", rep.UserID)
	}
	return nil
}

// UpdateIfVersion overwrites the row only if its version still equals
// expected. Returns domain.ErrConflict when the row moved on.
func (r *Repo) UpdateIfVersion(ctx context.Context, rep domain.UserReputation, expected int64) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("total_eco_points", rep.TotalEcoPoints).
		Set("level", rep.Level).
		Set("version", rep.Version).
		Set("updated_at", rep.UpdatedAt).
		Where(sq.Eq{"user_id": rep.UserID, "version": expected}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update user_reputation: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user_reputation", rep.UserID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user_reputation %s version %d: %w", rep.UserID, expected, domain.ErrConflict)
	}
	return nil
}
