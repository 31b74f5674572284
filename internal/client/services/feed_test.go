package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/apperr"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/models"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/logging"
)

func TestAnnouncements(t *testing.T) {
	api := &fakeClient{AnnouncementsRet: []models.Announcement{
		{ID: "a1", Title: "Clean-up drive", Status: "published", CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewFeedService(api, &fakeStore{}, logging.Discard())

	got, err := svc.Announcements(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(api.AnnouncementsRet, got); diff != "" {
		t.Fatalf("announcements mismatch (-want +got):\n%s", diff)
	}
}

func TestAnnouncements_Failure(t *testing.T) {
	api := &fakeClient{AnnouncementsErr: errors.New("boom")}
	svc := NewFeedService(api, &fakeStore{}, logging.Discard())

	_, err := svc.Announcements(context.Background())
	ce := requireCategory(t, err, apperr.CategoryUnknown)
	assert.Equal(t, "Failed to load announcements", ce.Message)
}

func TestMyComplaints_UsesStoredUser(t *testing.T) {
	api := &fakeClient{ComplaintsRet: []models.Complaint{{ID: "c1", ResidentID: "u1", Category: "noise"}}}
	store := &fakeStore{sess: sampleSession()}
	svc := NewFeedService(api, store, logging.Discard())

	got, err := svc.MyComplaints(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", api.LastResidentID)
	assert.Len(t, got, 1)
}

func TestMyComplaints_NoSession(t *testing.T) {
	api := &fakeClient{}
	svc := NewFeedService(api, &fakeStore{}, logging.Discard())

	_, err := svc.MyComplaints(context.Background())
	ce := requireCategory(t, err, apperr.CategoryAuth)
	assert.Equal(t, "Please sign in to view your complaints.", ce.Message)
	assert.Zero(t, api.Calls)
}

func TestMyComplaints_ServerError(t *testing.T) {
	api := &fakeClient{ComplaintsErr: &apperr.ResponseError{StatusCode: 503}}
	svc := NewFeedService(api, &fakeStore{sess: sampleSession()}, logging.Discard())

	_, err := svc.MyComplaints(context.Background())
	ce := requireCategory(t, err, apperr.CategoryServer)
	assert.Equal(t, "Something went wrong on our end. Please try again later.", ce.Message)
}
