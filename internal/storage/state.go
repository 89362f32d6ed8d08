package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atomixxxx/cuisine-app/internal/dbx"
)

// StateRepository holds single-value slots: the auto-backup snapshot,
// its last-run marker and the enabled flag.
type StateRepository struct {
	db dbx.DBTX
}

// NewStateRepository returns a repository bound to the given DBTX.
func NewStateRepository(db dbx.DBTX) *StateRepository {
	return &StateRepository{db: db}
}

// Get returns the stored value, or nil when the key is absent.
func (r *StateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state[%s]: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, superseding any previous value.
func (r *StateRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set state[%s]: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *StateRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM app_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete state[%s]: %w", key, err)
	}
	return nil
}
