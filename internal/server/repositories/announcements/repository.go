package announcements

import (
	"context"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/models"
)

type Repository interface {
	// ListPublished returns published announcements, newest first.
	ListPublished(ctx context.Context) ([]*models.Announcement, error)
}
