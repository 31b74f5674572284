// Package dbx holds the database handle abstraction shared by the client's
// SQLite repositories and the server's PostgreSQL repositories.
package dbx

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so a repository can be bound
// to either.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back when fn returns an error or panics; panics are
// re-raised after the rollback. fn's error is returned unchanged.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//		if _, err := users.NewPostgresRepository(tx).Create(ctx, u); err != nil {
//			return err
//		}
//		return otps.NewPostgresRepository(tx).Create(ctx, u.ID, purpose, hash, ttl)
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		_ = tx.Rollback()
		if p := recover(); p != nil {
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}
