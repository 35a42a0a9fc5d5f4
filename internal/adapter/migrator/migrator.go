// Package migrator applies the embedded goose migrations to a database.
package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"
)

// Status describes one migration as seen by the database.
type Status struct {
	Version   int64
	Source    string
	Applied   bool
	AppliedAt time.Time
}

// Migrator runs migrations from an fs.FS against db.
type Migrator struct {
	provider *goose.Provider
	log      *slog.Logger
}

// New creates a Migrator for the given dialect.
func New(db *sql.DB, dialect goose.Dialect, fsys fs.FS, logger *slog.Logger) (*Migrator, error) {
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	return &Migrator{
		provider: provider,
		log:      logger.With("component", "migrator"),
	}, nil
}

// Up applies every pending migration. It returns the number applied.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		m.log.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("source", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	return len(results), nil
}

// Status lists all known migrations in version order.
func (m *Migrator) Status(ctx context.Context) ([]Status, error) {
	list, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose status: %w", err)
	}

	out := make([]Status, len(list))
	for i, s := range list {
		out[i] = Status{
			Version:   s.Source.Version,
			Source:    s.Source.Path,
			Applied:   s.State == goose.StateApplied,
			AppliedAt: s.AppliedAt,
		}
	}
	return out, nil
}
