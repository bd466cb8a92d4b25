// Package kv is the persistent blob store behind the repositories: one JSON
// value per named collection, load tolerating absent keys.
package kv

import (
	"context"
	"database/sql"
	"errors"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Store struct {
	db QueryI
}

func NewStore(db QueryI) *Store {
	return &Store{db: db}
}

// Load returns the stored blob for key, or nil when the key has never been
// saved.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM app_state WHERE key = $1`

	var value []byte
	err := s.db.GetContext(ctx, &value, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return value, nil
}

func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query, key, value)
	if err != nil {
		return err
	}

	return nil
}
