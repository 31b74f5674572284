package otps

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/common"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/dbx"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/models"
)

type PostgresRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db, now: time.Now}
}

func (r *PostgresRepository) Create(ctx context.Context, userID, purpose, codeHash string, validity time.Duration) error {

	query :=
		`INSERT INTO otps (user_id, purpose, code_hash, expires_at)
		 VALUES ($1, $2, $3, $4)
		 `

	_, err := r.db.ExecContext(ctx, query, userID, purpose, codeHash, r.now().Add(validity))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

const otpColumns = `id, user_id, purpose, code_hash, expires_at, used_at, created_at`

func (r *PostgresRepository) FindActive(ctx context.Context, purpose, codeHash string) (*models.OTP, error) {
	query := `SELECT ` + otpColumns + ` FROM otps
		 WHERE purpose = $1 AND code_hash = $2 AND used_at IS NULL AND expires_at > $3
		 ORDER BY created_at DESC LIMIT 1`
	return scanOTP(r.db.QueryRowContext(ctx, query, purpose, codeHash, r.now()))
}

func (r *PostgresRepository) LatestForUser(ctx context.Context, userID, purpose string) (*models.OTP, error) {
	query := `SELECT ` + otpColumns + ` FROM otps
		 WHERE user_id = $1 AND purpose = $2
		 ORDER BY created_at DESC LIMIT 1`
	return scanOTP(r.db.QueryRowContext(ctx, query, userID, purpose))
}

func scanOTP(row *sql.Row) (*models.OTP, error) {
	o := &models.OTP{}
	var usedAt sql.NullTime
	if err := row.Scan(&o.ID, &o.UserID, &o.Purpose, &o.CodeHash, &o.ExpiresAt, &usedAt, &o.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if usedAt.Valid {
		t := usedAt.Time
		o.UsedAt = &t
	}
	return o, nil
}

func (r *PostgresRepository) MarkUsed(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE otps SET used_at = $2 WHERE id = $1 AND used_at IS NULL`, id, r.now())
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
