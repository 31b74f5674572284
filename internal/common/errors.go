package common

import "errors"

// Callers should match these with errors.Is.
var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation error")

	// Token and OTP lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidOTP   = errors.New("invalid or expired code")
	ErrTooManyOTP   = errors.New("code requested too recently")
)
