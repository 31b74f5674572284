// Package services contains server-side business logic. UserService covers
// registration, login, password reset requests and account verification.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/common"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/cryptox"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/dbx"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/logging"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/auth"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/blobstore"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/config"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/models"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/repositories/repomanager"
)

// OTPDigits is the length of verification codes.
const OTPDigits = 6

// maxCodeAttempts bounds how often issueCode redraws a code that collides
// with another account's active code.
const maxCodeAttempts = 5

var emailPattern = regexp.MustCompile(`(?i)^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// InputError is a rejected request field. It matches common.ErrValidation.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }
func (e *InputError) Unwrap() error { return common.ErrValidation }

func invalid(msg string) error { return &InputError{Message: msg} }

// Upload is a file received with a request.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type RegisterInput struct {
	Name            string
	Birthdate       string
	Address         string
	Email           string
	Password        string
	ConfirmPassword string
	Clearance       *Upload
}

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       blobstore.Store
	log         logging.Logger

	jwtSecret      []byte
	accessTTL      time.Duration
	otpTTL         time.Duration
	resetTTL       time.Duration
	resendInterval time.Duration

	now           func() time.Time
	newOTP        func() (string, error)
	newResetToken func() (string, error)
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, blobs blobstore.Store, cfg *config.Config, log logging.Logger) *UserService {
	return &UserService{
		db:             db,
		repomanager:    m,
		blobs:          blobs,
		log:            log,
		jwtSecret:      []byte(cfg.SecretKey),
		accessTTL:      cfg.AccessTokenValidityDuration,
		otpTTL:         cfg.OTPValidityDuration,
		resetTTL:       cfg.ResetTokenValidityDuration,
		resendInterval: cfg.OTPResendInterval,
		now:            time.Now,
		newOTP:         func() (string, error) { return cryptox.NewOTP(OTPDigits) },
		newResetToken:  func() (string, error) { return common.MakeRandHexString(32) },
	}
}

func validateRegistration(in *RegisterInput) error {
	required := []struct{ label, value string }{
		{"Full Name", in.Name},
		{"Birthdate", in.Birthdate},
		{"Address", in.Address},
		{"Email Address", in.Email},
		{"Password", in.Password},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return invalid(r.label + " is required")
		}
	}
	if !emailPattern.MatchString(strings.TrimSpace(in.Email)) {
		return invalid("Please enter a valid email address")
	}
	if in.ConfirmPassword != "" && in.ConfirmPassword != in.Password {
		return invalid("Passwords do not match")
	}
	if c := in.Clearance; c != nil {
		ct := strings.ToLower(c.ContentType)
		if ct != "application/pdf" && !strings.HasPrefix(ct, "image/") {
			return invalid("Barangay Clearance must be a PDF or an image")
		}
	}
	return nil
}

// Register creates an unverified account, stores the optional clearance and
// issues a verification code.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validateRegistration(&in); err != nil {
		return nil, err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		Birthdate:    strings.TrimSpace(in.Birthdate),
		Address:      strings.TrimSpace(in.Address),
		PasswordHash: hash,
	}

	if c := in.Clearance; c != nil {
		key := blobstore.NewClearanceKey(c.Filename, s.now())
		if err := s.blobs.Put(ctx, key, c.ContentType, c.Body, c.Size); err != nil {
			s.log.Error(ctx, "clearance upload failed", "key", key, "error", err)
			return nil, common.ErrInternal
		}
		user.ClearanceKey = key
	}

	var code string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		user = created
		code, err = s.issueCode(ctx, tx, user.ID)
		return err
	})
	if err != nil {
		if user.ClearanceKey != "" {
			if delErr := s.blobs.Delete(context.WithoutCancel(ctx), user.ClearanceKey); delErr != nil {
				s.log.Error(ctx, "orphaned clearance not removed", "key", user.ClearanceKey, "error", delErr)
			}
		}
		return nil, err
	}

	s.logCodeIssued(ctx, user.Email, code)
	return user, nil
}

func (s *UserService) logCodeIssued(ctx context.Context, email, code string) {
	s.log.Info(ctx, "verification code issued", "email", email)
	s.log.Debug(ctx, "verification code", "email", email, "code", code)
}

// issueCode stores a fresh verification code for userID. Codes are verified
// without an account reference, so a code already active for someone else is
// redrawn.
func (s *UserService) issueCode(ctx context.Context, db dbx.DBTX, userID string) (string, error) {
	repo := s.repomanager.OTPs(db)

	for range maxCodeAttempts {
		code, err := s.newOTP()
		if err != nil {
			return "", common.ErrInternal
		}
		hash := cryptox.HashToken(code)

		_, err = repo.FindActive(ctx, models.PurposeVerify, hash)
		switch {
		case err == nil:
			continue
		case !errors.Is(err, common.ErrNotFound):
			return "", fmt.Errorf("error checking code: %w", err)
		}

		if err := repo.Create(ctx, userID, models.PurposeVerify, hash, s.otpTTL); err != nil {
			return "", fmt.Errorf("error storing code: %w", err)
		}
		return code, nil
	}

	return "", fmt.Errorf("no unique verification code after %d attempts: %w", maxCodeAttempts, common.ErrInternal)
}

// Login verifies credentials and returns a signed access token. Unknown
// emails and wrong passwords are indistinguishable.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", nil, invalid("Email and password are required")
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, common.ErrUnauthorized
		}
		return "", nil, fmt.Errorf("error loading user: %w", err)
	}
	if !cryptox.CheckPassword(user.PasswordHash, password) {
		return "", nil, common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTTL)
	if err != nil {
		return "", nil, common.ErrInternal
	}
	return token, user, nil
}

// ForgotPassword records a single-use reset token for the account. Mail
// delivery is not implemented; the token is logged at debug level.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return invalid("Email Address is required")
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("error loading user: %w", err)
	}

	token, err := s.newResetToken()
	if err != nil {
		return common.ErrInternal
	}
	if err := s.repomanager.OTPs(s.db).Create(ctx, user.ID, models.PurposeReset, cryptox.HashToken(token), s.resetTTL); err != nil {
		return fmt.Errorf("error storing reset token: %w", err)
	}

	s.log.Info(ctx, "password reset requested", "email", user.Email)
	s.log.Debug(ctx, "password reset token", "email", user.Email, "token", token)
	return nil
}

// VerifyOTP consumes a verification code and marks its owner verified.
func (s *UserService) VerifyOTP(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return invalid("OTP is required")
	}

	otp, err := s.repomanager.OTPs(s.db).FindActive(ctx, models.PurposeVerify, cryptox.HashToken(code))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrInvalidOTP
		}
		return fmt.Errorf("error loading code: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.OTPs(tx).MarkUsed(ctx, otp.ID); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.ErrInvalidOTP
			}
			return fmt.Errorf("error consuming code: %w", err)
		}
		if err := s.repomanager.Users(tx).MarkVerified(ctx, otp.UserID); err != nil {
			return fmt.Errorf("error verifying user: %w", err)
		}
		return nil
	})
}

// ResendOTP issues a fresh verification code to userID unless one was issued
// within the resend interval.
func (s *UserService) ResendOTP(ctx context.Context, userID string) error {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrUnauthorized
		}
		return fmt.Errorf("error loading user: %w", err)
	}
	if user.Verified {
		return invalid("Account is already verified")
	}

	last, err := s.repomanager.OTPs(s.db).LatestForUser(ctx, user.ID, models.PurposeVerify)
	switch {
	case err == nil:
		if s.now().Sub(last.CreatedAt) < s.resendInterval {
			return common.ErrTooManyOTP
		}
	case errors.Is(err, common.ErrNotFound):
	default:
		return fmt.Errorf("error loading code: %w", err)
	}

	code, err := s.issueCode(ctx, s.db, user.ID)
	if err != nil {
		return err
	}
	s.logCodeIssued(ctx, user.Email, code)
	return nil
}
