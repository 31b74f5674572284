package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/common"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// UserIDFromContext returns the authenticated user set by requireAuth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get(common.AuthorizationHeader)
		token, ok := strings.CutPrefix(h, common.BearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			writeMessage(w, http.StatusUnauthorized, "Missing token")
			return
		}

		userID, err := auth.GetUserIDFromToken(strings.TrimSpace(token), s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				writeMessage(w, http.StatusUnauthorized, "Session expired, please sign in again")
				return
			}
			writeMessage(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info(r.Context(), "request",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}
