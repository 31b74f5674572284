package services

import (
	"context"
	"sync"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/models"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/notify"
)

// fakeClient implements api.Client and records what it was called with.
type fakeClient struct {
	LoginRet *models.Session
	LoginErr error

	RegisterRet *models.UserProfile
	RegisterErr error

	ForgotErr    error
	VerifyErr    error
	ResendOTPErr error

	ComplaintsRet []models.Complaint
	ComplaintsErr error

	AnnouncementsRet []models.Announcement
	AnnouncementsErr error

	PingErr error

	Calls           int
	LastLoginEmail  string
	LastLoginPass   string
	LastRegister    models.RegistrationPayload
	LastForgotEmail string
	ForgotCalls     int
	LastOTP         string
	LastResidentID  string
	Token           string
	SetTokenHistory []string
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*models.Session, error) {
	f.Calls++
	f.LastLoginEmail, f.LastLoginPass = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, p models.RegistrationPayload) (*models.UserProfile, error) {
	f.Calls++
	f.LastRegister = p
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) ForgotPassword(_ context.Context, email string) error {
	f.Calls++
	f.ForgotCalls++
	f.LastForgotEmail = email
	return f.ForgotErr
}

func (f *fakeClient) VerifyOTP(_ context.Context, code string) error {
	f.Calls++
	f.LastOTP = code
	return f.VerifyErr
}

func (f *fakeClient) ResendOTP(context.Context) error {
	f.Calls++
	return f.ResendOTPErr
}

func (f *fakeClient) ComplaintsByResident(_ context.Context, residentID string) ([]models.Complaint, error) {
	f.Calls++
	f.LastResidentID = residentID
	return f.ComplaintsRet, f.ComplaintsErr
}

func (f *fakeClient) Announcements(context.Context) ([]models.Announcement, error) {
	f.Calls++
	return f.AnnouncementsRet, f.AnnouncementsErr
}

func (f *fakeClient) Ping(context.Context) error { return f.PingErr }

func (f *fakeClient) SetToken(token string) {
	f.Token = token
	f.SetTokenHistory = append(f.SetTokenHistory, token)
}

// fakeStore is an in-memory session.Store.
type fakeStore struct {
	sess     *models.Session
	SaveErr  error
	GetErr   error
	ClearErr error
	Saves    int
}

func (s *fakeStore) Save(_ context.Context, sess models.Session) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Saves++
	cp := sess
	s.sess = &cp
	return nil
}

func (s *fakeStore) Get(context.Context) (*models.Session, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	if s.sess == nil {
		return nil, nil
	}
	cp := *s.sess
	return &cp, nil
}

func (s *fakeStore) Clear(context.Context) error {
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.sess = nil
	return nil
}

type note struct {
	Level   notify.Level
	Title   string
	Message string
}

type recordingNotifier struct {
	mu    sync.Mutex
	Notes []note
}

func (r *recordingNotifier) Notify(level notify.Level, title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Notes = append(r.Notes, note{Level: level, Title: title, Message: message})
}
