// Package repomanager vends the PostgreSQL repositories and runs the embedded
// goose migrations.
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/dbx"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/migrations"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/repositories/announcements"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/repositories/complaints"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/repositories/otps"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/repositories/users"
)

type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) OTPs(db dbx.DBTX) otps.Repository {
	return otps.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Announcements(db dbx.DBTX) announcements.Repository {
	return announcements.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Complaints(db dbx.DBTX) complaints.Repository {
	return complaints.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations with the pgx dialect.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}
