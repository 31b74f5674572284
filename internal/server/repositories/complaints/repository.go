package complaints

import (
	"context"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/models"
)

type Repository interface {
	// ListByResident returns the complaints filed by residentID, newest first.
	ListByResident(ctx context.Context, residentID string) ([]*models.Complaint, error)
}
