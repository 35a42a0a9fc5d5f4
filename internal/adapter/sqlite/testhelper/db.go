// Package testhelper opens migrated in-memory SQLite databases for tests.
package testhelper

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/ecovoice-backend/internal/adapter/migrator"
	"github.com/heartmarshall/ecovoice-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/ecovoice-backend/migrations"
)

// SetupTestDB returns a fresh, fully migrated in-memory database.
// It is closed via t.Cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("testhelper: open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	m, err := migrator.New(db, goose.DialectSQLite3, migrations.SQLite(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("testhelper: migrator: %v", err)
	}
	if _, err := m.Up(ctx); err != nil {
		t.Fatalf("testhelper: migrate: %v", err)
	}

	return db
}

// UniqueUserID returns a user id that no other test uses.
func UniqueUserID() string {
	return "user-" + uuid.New().String()[:8]
}
