package announcements

import (
	"context"
	"fmt"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/dbx"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/models"
)

const StatusPublished = "published"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPublished(ctx context.Context) ([]*models.Announcement, error) {

	query :=
		`SELECT id, title, title_slug, header, body, banner_image, status, posted_by, created_at
		 FROM announcements
		 WHERE status = $1
		 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, StatusPublished)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Announcement, 0)
	for rows.Next() {
		a := &models.Announcement{}
		if err := rows.Scan(&a.ID, &a.Title, &a.TitleSlug, &a.Header, &a.Body,
			&a.BannerImage, &a.Status, &a.PostedBy, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
