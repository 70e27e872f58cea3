package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/internhub-dev/internhub/internal/client/models"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM tokens WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get tokens[%s]: %w", key, err)
	}
	return value, true, nil
}

func (r *SQLiteRepository) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tokens (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set tokens[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Save(ctx context.Context, pair models.TokenPair) error {
	if err := r.set(ctx, accessKey, pair.Access); err != nil {
		return err
	}
	return r.set(ctx, refreshKey, pair.Refresh)
}

func (r *SQLiteRepository) SaveAccess(ctx context.Context, access string) error {
	return r.set(ctx, accessKey, access)
}

func (r *SQLiteRepository) Load(ctx context.Context) (models.TokenPair, bool, error) {
	access, okA, err := r.get(ctx, accessKey)
	if err != nil {
		return models.TokenPair{}, false, err
	}
	refresh, okR, err := r.get(ctx, refreshKey)
	if err != nil {
		return models.TokenPair{}, false, err
	}
	pair := models.TokenPair{Access: access, Refresh: refresh}
	return pair, okA && okR, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tokens`)
	if err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}
	return nil
}
