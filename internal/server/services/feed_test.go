package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/common"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/models"
)

func TestFeed_Announcements(t *testing.T) {
	db, _ := newSQLMockDB(t)
	want := []*models.Announcement{{ID: "a1", Title: "Clean-up drive"}}
	s := NewFeedService(db, &fakeRepoManager{a: &fakeAnnouncementsRepo{out: want}})

	got, err := s.Announcements(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFeed_AnnouncementsError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s := NewFeedService(db, &fakeRepoManager{a: &fakeAnnouncementsRepo{err: errors.New("db down")}})

	_, err := s.Announcements(context.Background())
	assert.ErrorContains(t, err, "error listing announcements: db down")
}

func TestFeed_ResidentComplaints(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeComplaintsRepo{out: []*models.Complaint{{ID: "c1", ResidentID: "u-1"}}}
	s := NewFeedService(db, &fakeRepoManager{c: repo})

	got, err := s.ResidentComplaints(context.Background(), "u-1", "u-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "u-1", repo.residentID)
}

func TestFeed_ResidentComplaintsOfSomeoneElse(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeComplaintsRepo{}
	s := NewFeedService(db, &fakeRepoManager{c: repo})

	_, err := s.ResidentComplaints(context.Background(), "u-1", "u-2")
	assert.ErrorIs(t, err, common.ErrForbidden)
	assert.Empty(t, repo.residentID)
}
