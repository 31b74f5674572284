package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/common"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/services"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// statusFor maps a service error to its HTTP status and client-facing
// message. Anything unrecognised is a 500 with a generic message.
func statusFor(err error) (int, string) {
	var ie *services.InputError
	switch {
	case errors.As(err, &ie):
		return http.StatusBadRequest, ie.Message
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, common.ErrInvalidOTP):
		return http.StatusBadRequest, "Invalid or expired code"
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, common.ErrForbidden):
		return http.StatusForbidden, "Access denied"
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, "Account not found"
	case errors.Is(err, common.ErrAlreadyExists):
		return http.StatusConflict, "Email is already registered"
	case errors.Is(err, common.ErrTooManyOTP):
		return http.StatusTooManyRequests, "Please wait before requesting a new code"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	} else {
		s.logger.Debug(r.Context(), "request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	writeMessage(w, status, msg)
}
