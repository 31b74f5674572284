package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/common"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/dbx"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/models"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, name, email, birthdate, address, phone, profile_image, password_hash, clearance_key, verified, created_at`

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (name, email, birthdate, address, password_hash, clearance_key)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.Birthdate, user.Address, user.PasswordHash, user.ClearanceKey,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Birthdate, &u.Address, &u.Phone,
		&u.ProfileImage, &u.PasswordHash, &u.ClearanceKey, &u.Verified, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) MarkVerified(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET verified = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
