package services

import (
	"context"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/api"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/apperr"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/models"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/session"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/logging"
)

// FeedService reads the community feed: announcements for everyone and the
// signed-in resident's own complaints.
type FeedService interface {
	Announcements(ctx context.Context) ([]models.Announcement, error)
	MyComplaints(ctx context.Context) ([]models.Complaint, error)
}

type feedService struct {
	client api.Client
	store  session.Store
	log    logging.Logger
}

func NewFeedService(client api.Client, store session.Store, log logging.Logger) FeedService {
	return &feedService{client: client, store: store, log: log.With("service", "feed")}
}

func (f *feedService) Announcements(ctx context.Context) ([]models.Announcement, error) {
	items, err := f.client.Announcements(ctx)
	if err != nil {
		f.log.Warn(ctx, "announcements fetch failed", "error", err)
		return nil, apperr.Classify(apperr.OpAnnouncements, err)
	}
	return items, nil
}

func (f *feedService) MyComplaints(ctx context.Context) ([]models.Complaint, error) {
	sess, err := f.store.Get(ctx)
	if err != nil {
		return nil, apperr.Classify(apperr.OpComplaints, err)
	}
	if sess == nil {
		return nil, apperr.New(apperr.OpComplaints, apperr.CategoryAuth)
	}

	items, err := f.client.ComplaintsByResident(ctx, sess.User.ID)
	if err != nil {
		f.log.Warn(ctx, "complaints fetch failed", "resident_id", sess.User.ID, "error", err)
		return nil, apperr.Classify(apperr.OpComplaints, err)
	}
	return items, nil
}
