package httpapi

import (
	"time"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/models"
)

type userResponse struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Birthdate    string `json:"birthdate"`
	Address      string `json:"address"`
	Phone        string `json:"phone,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	Verified     bool   `json:"verified"`
}

func toUser(u *models.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Birthdate:    u.Birthdate,
		Address:      u.Address,
		Phone:        u.Phone,
		ProfileImage: u.ProfileImage,
		Verified:     u.Verified,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type registerResponse struct {
	User userResponse `json:"user"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type otpRequest struct {
	OTP string `json:"otp"`
}

type announcementResponse struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	TitleSlug   string    `json:"title_slug"`
	Header      string    `json:"header"`
	Body        string    `json:"body"`
	BannerImage string    `json:"banner_image"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	PostedBy    string    `json:"posted_by"`
}

type complaintResponse struct {
	ID          string    `json:"_id"`
	ResidentID  string    `json:"resident_id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
