package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Category is the closed set of user-facing failure kinds.
type Category string

const (
	CategoryValidation   Category = "ValidationError"
	CategoryAuth         Category = "AuthError"
	CategoryConflict     Category = "ConflictError"
	CategoryNotFound     Category = "NotFoundError"
	CategoryRateLimited  Category = "RateLimitedError"
	CategoryServer       Category = "ServerError"
	CategoryConnectivity Category = "ConnectivityError"
	CategoryUnknown      Category = "UnknownError"
)

// Op names the flow a failure happened in; it selects the fixed messages.
type Op string

const (
	OpLogin          Op = "login"
	OpRegister       Op = "register"
	OpForgotPassword Op = "forgot-password"
	OpVerifyOTP      Op = "verify-otp"
	OpResendOTP      Op = "resend-otp"
	OpAnnouncements  Op = "announcements"
	OpComplaints     Op = "complaints"
)

// Error is a classified failure.
type Error struct {
	Op       Op
	Category Category
	Message  string
	// Status is the HTTP status when the failure came from a response, else 0.
	Status int
	Err    error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// ResponseError is a non-2xx answer from the API before classification.
type ResponseError struct {
	StatusCode int
	// Message is the server's "message" field, empty when absent.
	Message string
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// ValidationError is a client-side form rule violation; it is raised before
// any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidation is shorthand for a field-level ValidationError.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// CategoryOf returns the category of a classified error, or CategoryUnknown
// when err was never classified.
func CategoryOf(err error) Category {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return CategoryUnknown
}

// IsCategory reports whether err was classified as c.
func IsCategory(err error, c Category) bool {
	var e *Error
	return errors.As(err, &e) && e.Category == c
}

// New builds a classified error raised on the client itself, carrying the
// fixed message for op and c.
func New(op Op, c Category) *Error {
	return &Error{Op: op, Category: c, Message: messageFor(op, c)}
}
