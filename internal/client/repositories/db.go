// Package repositories wires the client-local SQLite database: it opens
// the file and applies the embedded goose migrations.
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/internhub-dev/internhub/internal/client/migrations"
	"github.com/pressly/goose/v3"
)

// InitDatabase opens the SQLite database at dsn and brings the schema
// up to date. The caller owns the returned handle.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open client db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
