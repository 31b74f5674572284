package services

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/common"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/cryptox"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/dbx"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/models"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/repositories/announcements"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/repositories/complaints"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/repositories/otps"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/repositories/users"
)

func init() {
	cryptox.PasswordCost = bcrypt.MinCost
}

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	created     *models.User
	createErr   error
	byEmail     *models.User
	byEmailErr  error
	byID        *models.User
	byIDErr     error
	verifiedID  string
	verifyErr   error
	lookupEmail string
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	cp := *u
	cp.ID = "u-1"
	f.created = &cp
	return &cp, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.lookupEmail = email
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	if f.byEmail == nil {
		return nil, common.ErrNotFound
	}
	return f.byEmail, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	if f.byID == nil {
		return nil, common.ErrNotFound
	}
	return f.byID, nil
}

func (f *fakeUsersRepo) MarkVerified(ctx context.Context, id string) error {
	f.verifiedID = id
	return f.verifyErr
}

type createdOTP struct {
	userID, purpose, hash string
	validity              time.Duration
}

type fakeOTPRepo struct {
	created   []createdOTP
	createErr error
	active    *models.OTP
	activeErr error
	findArgs  [2]string
	latest    *models.OTP
	latestErr error
	usedID    string
	usedErr   error

	// activeByHash, when set, answers FindActive per code hash.
	activeByHash map[string]*models.OTP
}

func (f *fakeOTPRepo) Create(ctx context.Context, userID, purpose, codeHash string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, createdOTP{userID, purpose, codeHash, validity})
	return nil
}

func (f *fakeOTPRepo) FindActive(ctx context.Context, purpose, codeHash string) (*models.OTP, error) {
	f.findArgs = [2]string{purpose, codeHash}
	if f.activeErr != nil {
		return nil, f.activeErr
	}
	if f.activeByHash != nil {
		if o, ok := f.activeByHash[codeHash]; ok {
			return o, nil
		}
		return nil, common.ErrNotFound
	}
	if f.active == nil {
		return nil, common.ErrNotFound
	}
	return f.active, nil
}

func (f *fakeOTPRepo) LatestForUser(ctx context.Context, userID, purpose string) (*models.OTP, error) {
	if f.latestErr != nil {
		return nil, f.latestErr
	}
	if f.latest == nil {
		return nil, common.ErrNotFound
	}
	return f.latest, nil
}

func (f *fakeOTPRepo) MarkUsed(ctx context.Context, id string) error {
	f.usedID = id
	return f.usedErr
}

type fakeAnnouncementsRepo struct {
	out []*models.Announcement
	err error
}

func (f *fakeAnnouncementsRepo) ListPublished(ctx context.Context) ([]*models.Announcement, error) {
	return f.out, f.err
}

type fakeComplaintsRepo struct {
	out        []*models.Complaint
	err        error
	residentID string
}

func (f *fakeComplaintsRepo) ListByResident(ctx context.Context, residentID string) ([]*models.Complaint, error) {
	f.residentID = residentID
	return f.out, f.err
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	o *fakeOTPRepo
	a *fakeAnnouncementsRepo
	c *fakeComplaintsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository { return m.u }

func (m *fakeRepoManager) OTPs(db dbx.DBTX) otps.Repository { return m.o }

func (m *fakeRepoManager) Announcements(db dbx.DBTX) announcements.Repository { return m.a }

func (m *fakeRepoManager) Complaints(db dbx.DBTX) complaints.Repository { return m.c }

type fakeBlobs struct {
	key, contentType string
	body             string
	size             int64
	err              error
	deleted          []string
	deleteErr        error
}

func (f *fakeBlobs) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	if f.err != nil {
		return f.err
	}
	b, _ := io.ReadAll(body)
	f.key, f.contentType, f.body, f.size = key, contentType, string(b), size
	return nil
}

func (f *fakeBlobs) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return f.deleteErr
}
