package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/services"
)

type empty struct{}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &services.InputError{Message: "Malformed request body"}
	}
	return nil
}

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	token, user, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Logged in", "user_id", user.ID)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: toUser(user)})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)
	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusRequestEntityTooLarge, "Upload is too large")
			return
		}
		s.writeError(w, r, &services.InputError{Message: "Malformed form data"})
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	in := services.RegisterInput{
		Name:            r.FormValue("name"),
		Birthdate:       r.FormValue("birthdate"),
		Address:         r.FormValue("address"),
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirmPassword"),
	}

	file, header, err := r.FormFile("clearance")
	switch {
	case err == nil:
		defer file.Close()
		in.Clearance = &services.Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Body:        file,
		}
	case errors.Is(err, http.ErrMissingFile):
	default:
		s.writeError(w, r, &services.InputError{Message: "Malformed clearance upload"})
		return
	}

	user, err := s.users.Register(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "user_id", user.ID, "clearance", user.ClearanceKey != "")
	writeJSON(w, http.StatusCreated, registerResponse{User: toUser(user)})
}

func (s *Server) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.users.ForgotPassword(r.Context(), req.Email); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, empty{})
}

func (s *Server) verifyOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.users.VerifyOTP(r.Context(), req.OTP); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, empty{})
}

func (s *Server) resendOTP(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	if err := s.users.ResendOTP(r.Context(), userID); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, empty{})
}

func (s *Server) announcements(w http.ResponseWriter, r *http.Request) {
	items, err := s.feed.Announcements(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]announcementResponse, 0, len(items))
	for _, a := range items {
		out = append(out, announcementResponse{
			ID: a.ID, Title: a.Title, TitleSlug: a.TitleSlug, Header: a.Header, Body: a.Body,
			BannerImage: a.BannerImage, Status: a.Status, CreatedAt: a.CreatedAt, PostedBy: a.PostedBy,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) residentComplaints(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	items, err := s.feed.ResidentComplaints(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]complaintResponse, 0, len(items))
	for _, c := range items {
		out = append(out, complaintResponse{
			ID: c.ID, ResidentID: c.ResidentID, Category: c.Category,
			Description: c.Description, Status: c.Status, CreatedAt: c.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
