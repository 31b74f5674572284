// Package models defines the client-side records exchanged with the BRGY
// KONEK API and persisted in the local session.
package models

import "time"

// Credentials is the sign-in form input. It is never persisted.
type Credentials struct {
	Email    string
	Password string
}

// Clearance is a locally picked barangay clearance document.
type Clearance struct {
	Name     string
	Size     int64
	MimeType string
	// URI is the local path of the picked file.
	URI string
}

// RegistrationPayload is the create-account form input. A nil Clearance
// means no document was picked.
type RegistrationPayload struct {
	Name            string
	Birthdate       string
	Address         string
	Email           string
	Password        string
	ConfirmPassword string
	Clearance       *Clearance
}

// UserProfile mirrors the server-side user record. The client does not
// interpret it beyond displaying it.
type UserProfile struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Birthdate    string `json:"birthdate"`
	Address      string `json:"address"`
	Phone        string `json:"phone,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Session is the durable proof of authentication.
type Session struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type Announcement struct {
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

type Complaint struct {
	ID          string    `json:"_id"`
	ResidentID  string    `json:"resident_id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
