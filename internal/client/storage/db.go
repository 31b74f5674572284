// Package storage opens the local SQLite database of the client and brings
// its schema up to date.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded goose migrations. Re-running is a no-op.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Open opens (creating if needed) the SQLite database at dsn and migrates it.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	// single writer; keeps ":memory:" databases on one connection
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
