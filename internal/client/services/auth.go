// Package services contains the application services behind the terminal
// front end. Every failure leaving this package is an *apperr.Error; the UI
// prints its Message and nothing else.
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/api"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/apperr"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/cooldown"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/form"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/models"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/notify"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/session"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/logging"
)

// AuthService defines the account flows of the app.
//
// Contract:
//   - Login: validate, authenticate, persist the session.
//   - Register: validate, create the account (no auto-login).
//   - ForgotPassword / ResendPasswordReset: request a reset link; resending is
//     gated by a cooldown armed on every successful request.
//   - VerifyOTP / ResendOTP: one-time code flows.
//   - RestoreSession / Logout: startup read and explicit clear of the session.
//
// No method retries on its own.
type AuthService interface {
	Login(ctx context.Context, c models.Credentials) (*models.Session, error)
	Register(ctx context.Context, p models.RegistrationPayload) (*models.UserProfile, error)
	ForgotPassword(ctx context.Context, email string) error
	ResendPasswordReset(ctx context.Context) error
	ResendCooldown() time.Duration
	VerifyOTP(ctx context.Context, code string) error
	ResendOTP(ctx context.Context) error
	RestoreSession(ctx context.Context) (*models.Session, error)
	Logout(ctx context.Context) error
}

// AuthOptions tunes optional behaviour of the auth service.
type AuthOptions struct {
	// RequireClearance rejects registrations without a clearance document.
	RequireClearance bool
	// Cooldown gates password reset resends; nil means a 60 second gate on
	// the wall clock.
	Cooldown *cooldown.Gate
}

type authService struct {
	client   api.Client
	store    session.Store
	notifier notify.Notifier
	log      logging.Logger
	opts     AuthOptions

	mu         sync.Mutex
	resetEmail string
}

func NewAuthService(client api.Client, store session.Store, n notify.Notifier, log logging.Logger, opts AuthOptions) AuthService {
	if opts.Cooldown == nil {
		opts.Cooldown = cooldown.New(cooldown.DefaultWindow, nil)
	}
	return &authService{
		client:   client,
		store:    store,
		notifier: n,
		log:      log.With("service", "auth"),
		opts:     opts,
	}
}

func (a *authService) fail(ctx context.Context, op apperr.Op, err error) error {
	ce := apperr.Classify(op, err)
	a.log.Warn(ctx, "request failed", "op", op, "category", ce.Category, "status", ce.Status, "error", err)
	return ce
}

func (a *authService) Login(ctx context.Context, c models.Credentials) (*models.Session, error) {
	email := strings.TrimSpace(c.Email)
	if err := form.First(
		form.Required("email", "Email Address", email),
		form.Required("password", "Password", c.Password),
	); err != nil {
		return nil, apperr.Classify(apperr.OpLogin, err)
	}

	sess, err := a.client.Login(ctx, email, c.Password)
	if err != nil {
		return nil, a.fail(ctx, apperr.OpLogin, err)
	}

	if err := a.store.Save(ctx, *sess); err != nil {
		return nil, a.fail(ctx, apperr.OpLogin, err)
	}
	a.client.SetToken(sess.Token)

	a.log.Info(ctx, "login succeeded", "user_id", sess.User.ID)
	a.notifier.Notify(notify.LevelSuccess, "Login successful", "")
	return sess, nil
}

func (a *authService) Register(ctx context.Context, p models.RegistrationPayload) (*models.UserProfile, error) {
	p.Email = strings.TrimSpace(p.Email)
	if err := a.validateRegistration(p); err != nil {
		return nil, apperr.Classify(apperr.OpRegister, err)
	}

	user, err := a.client.Register(ctx, p)
	if err != nil {
		return nil, a.fail(ctx, apperr.OpRegister, err)
	}

	a.log.Info(ctx, "registration succeeded", "email", p.Email, "clearance", p.Clearance != nil)
	a.notifier.Notify(notify.LevelSuccess, "Registration successful", "")
	return user, nil
}

func (a *authService) validateRegistration(p models.RegistrationPayload) error {
	err := form.First(
		form.Required("name", "Full Name", p.Name),
		form.Required("birthdate", "Birthdate", p.Birthdate),
		form.Required("address", "Address", p.Address),
		form.Email("email", "Email Address", p.Email),
		form.Required("password", "Password", p.Password),
		form.Required("confirmPassword", "Confirm Password", p.ConfirmPassword),
		form.Match("confirmPassword", p.ConfirmPassword, p.Password, "Passwords do not match"),
	)
	if err != nil {
		return err
	}

	if p.Clearance == nil {
		if a.opts.RequireClearance {
			return apperr.NewValidation("clearance", "Barangay Clearance is required")
		}
		return nil
	}
	if !acceptedClearanceType(p.Clearance.MimeType) {
		return apperr.NewValidation("clearance", "Barangay Clearance must be a PDF or an image")
	}
	return nil
}

func acceptedClearanceType(mime string) bool {
	return mime == "application/pdf" || strings.HasPrefix(mime, "image/")
}

func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := form.Email("email", "Email Address", email); err != nil {
		return apperr.Classify(apperr.OpForgotPassword, err)
	}
	return a.sendReset(ctx, email)
}

// ResendPasswordReset repeats the last successful ForgotPassword request.
func (a *authService) ResendPasswordReset(ctx context.Context) error {
	a.mu.Lock()
	email := a.resetEmail
	a.mu.Unlock()

	if email == "" {
		return apperr.Classify(apperr.OpForgotPassword,
			apperr.NewValidation("email", "Email Address is required"))
	}
	if !a.opts.Cooldown.Ready() {
		return apperr.New(apperr.OpForgotPassword, apperr.CategoryRateLimited)
	}
	return a.sendReset(ctx, email)
}

func (a *authService) sendReset(ctx context.Context, email string) error {
	if err := a.client.ForgotPassword(ctx, email); err != nil {
		return a.fail(ctx, apperr.OpForgotPassword, err)
	}

	a.mu.Lock()
	a.resetEmail = email
	a.mu.Unlock()
	a.opts.Cooldown.Start()

	a.notifier.Notify(notify.LevelSuccess, "Reset link sent!", "Check your email for instructions.")
	return nil
}

func (a *authService) ResendCooldown() time.Duration {
	return a.opts.Cooldown.Remaining()
}

func (a *authService) VerifyOTP(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if err := form.Required("otp", "Verification code", code); err != nil {
		return apperr.Classify(apperr.OpVerifyOTP, err)
	}
	if err := a.client.VerifyOTP(ctx, code); err != nil {
		return a.fail(ctx, apperr.OpVerifyOTP, err)
	}
	a.notifier.Notify(notify.LevelSuccess, "Verification successful", "")
	return nil
}

func (a *authService) ResendOTP(ctx context.Context) error {
	if err := a.client.ResendOTP(ctx); err != nil {
		return a.fail(ctx, apperr.OpResendOTP, err)
	}
	a.notifier.Notify(notify.LevelSuccess, "A new code has been sent", "")
	return nil
}

// RestoreSession loads the stored session, if any, and arms the API client
// with its token. A read failure counts as signed out.
func (a *authService) RestoreSession(ctx context.Context) (*models.Session, error) {
	sess, err := a.store.Get(ctx)
	if err != nil {
		a.log.Error(ctx, "session restore failed", "error", err)
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if sess == nil {
		return nil, nil
	}
	a.client.SetToken(sess.Token)
	return sess, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.client.SetToken("")
	a.notifier.Notify(notify.LevelSuccess, "Logged out", "")
	return nil
}
