// Package httpapi exposes the user and feed services as the JSON REST API
// consumed by the client.
package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/logging"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/models"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/services"
)

// MaxUploadBytes caps the size of a registration request.
const MaxUploadBytes = 10 << 20

type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, code string) error
	ResendOTP(ctx context.Context, userID string) error
}

type FeedService interface {
	Announcements(ctx context.Context) ([]*models.Announcement, error)
	ResidentComplaints(ctx context.Context, requesterID, residentID string) ([]*models.Complaint, error)
}

type Server struct {
	users     UserService
	feed      FeedService
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(us UserService, fs FeedService, l logging.Logger, secretKey string) *Server {
	return &Server{
		users:     us,
		feed:      fs,
		logger:    l.With("module", "http_server"),
		jwtSecret: []byte(secretKey),
	}
}

// Handler builds the router with all routes and middleware attached.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		s.requestLogger,
		middleware.Recoverer,
	)

	r.Get("/ping", s.ping)
	r.Get("/announcements", s.announcements)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.login)
		r.Post("/register", s.register)
		r.Post("/forgot-password", s.forgotPassword)
		r.Post("/verify-otp", s.verifyOTP)
		r.With(s.requireAuth).Post("/resend-otp", s.resendOTP)
	})

	r.With(s.requireAuth).Get("/complaints/resident/{id}", s.residentComplaints)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}
