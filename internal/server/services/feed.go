package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/common"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/models"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/repositories/repomanager"
)

// FeedService serves the read-only announcement and complaint lists.
type FeedService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewFeedService(db *sql.DB, m repomanager.RepositoryManager) *FeedService {
	return &FeedService{db: db, repomanager: m}
}

func (s *FeedService) Announcements(ctx context.Context) ([]*models.Announcement, error) {
	items, err := s.repomanager.Announcements(s.db).ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing announcements: %w", err)
	}
	return items, nil
}

// ResidentComplaints lists residentID's complaints. Residents may only read
// their own.
func (s *FeedService) ResidentComplaints(ctx context.Context, requesterID, residentID string) ([]*models.Complaint, error) {
	if requesterID != residentID {
		return nil, common.ErrForbidden
	}
	items, err := s.repomanager.Complaints(s.db).ListByResident(ctx, residentID)
	if err != nil {
		return nil, fmt.Errorf("error listing complaints: %w", err)
	}
	return items, nil
}
