package api

import (
	"context"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, payload models.RegistrationPayload) (*models.UserProfile, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, code string) error
	ResendOTP(ctx context.Context) error
	ComplaintsByResident(ctx context.Context, residentID string) ([]models.Complaint, error)
	Announcements(ctx context.Context) ([]models.Announcement, error)
	Ping(ctx context.Context) error
	// SetToken replaces the bearer token; empty clears it.
	SetToken(token string)
}
