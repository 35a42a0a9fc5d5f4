package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/ecovoice-backend/internal/adapter/migrator"
	"github.com/heartmarshall/ecovoice-backend/internal/adapter/postgres"
	pgactivity "github.com/heartmarshall/ecovoice-backend/internal/adapter/postgres/activity"
	pgreputation "github.com/heartmarshall/ecovoice-backend/internal/adapter/postgres/reputation"
	"github.com/heartmarshall/ecovoice-backend/internal/adapter/sqlite"
	liteactivity "github.com/heartmarshall/ecovoice-backend/internal/adapter/sqlite/activity"
	litereputation "github.com/heartmarshall/ecovoice-backend/internal/adapter/sqlite/reputation"
	"github.com/heartmarshall/ecovoice-backend/internal/config"
	"github.com/heartmarshall/ecovoice-backend/internal/domain"
	"github.com/heartmarshall/ecovoice-backend/migrations"
)

type activityStore interface {
	Insert(ctx context.Context, rec domain.ActivityRecord) error
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.ActivityRecord, error)
}

type reputationStore interface {
	Find(ctx context.Context, userID string) (domain.UserReputation, bool, error)
	Insert(ctx context.Context, rep domain.UserReputation) error
	UpdateIfVersion(ctx context.Context, rep domain.UserReputation, expected int64) error
}

// storage is the persistence backend chosen by database.driver.
type storage struct {
	driver     string
	activity   activityStore
	reputation reputationStore
	migrator   *migrator.Migrator
	ping       func(ctx context.Context) error
	close      func()
}

func openStorage(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*storage, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, logger)
	case config.DriverSQLite:
		return openSQLite(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown database driver %q: %w", cfg.Driver, domain.ErrConfiguration)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*storage, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// goose needs database/sql; the handle shares the pool's connections.
	db := stdlib.OpenDBFromPool(pool)
	m, err := migrator.New(db, goose.DialectPostgres, migrations.Postgres(), logger)
	if err != nil {
		db.Close()
		pool.Close()
		return nil, err
	}

	logger.Info("storage ready", slog.String("driver", config.DriverPostgres))
	return &storage{
		driver:     config.DriverPostgres,
		activity:   pgactivity.New(pool),
		reputation: pgreputation.New(pool),
		migrator:   m,
		ping:       pool.Ping,
		close: func() {
			db.Close()
			pool.Close()
		},
	}, nil
}

func openSQLite(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*storage, error) {
	db, err := sqlite.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}

	m, err := migrator.New(db, goose.DialectSQLite3, migrations.SQLite(), logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("storage ready",
		slog.String("driver", config.DriverSQLite),
		slog.String("path", cfg.SQLitePath),
	)
	return &storage{
		driver:     config.DriverSQLite,
		activity:   liteactivity.New(db),
		reputation: litereputation.New(db),
		migrator:   m,
		ping:       db.PingContext,
		close:      func() { db.Close() },
	}, nil
}
