package complaints

import (
	"context"
	"fmt"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/dbx"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByResident(ctx context.Context, residentID string) ([]*models.Complaint, error) {

	query :=
		`SELECT id, resident_id, category, description, status, created_at
		 FROM complaints
		 WHERE resident_id = $1
		 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, residentID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Complaint, 0)
	for rows.Next() {
		c := &models.Complaint{}
		if err := rows.Scan(&c.ID, &c.ResidentID, &c.Category, &c.Description, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
