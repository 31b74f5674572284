package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}

	return value, nil
}

// Set inserts or replaces the value under key and stamps updated_at.
func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {

	query :=
		`INSERT INTO metadata (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}

	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}
