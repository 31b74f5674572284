// Package models holds the server-side records stored in PostgreSQL.
package models

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	Birthdate    string
	Address      string
	Phone        string
	ProfileImage string
	PasswordHash string
	// ClearanceKey is the object key of the uploaded clearance, empty when
	// none was attached.
	ClearanceKey string
	Verified     bool
	CreatedAt    time.Time
}

// OTP purposes.
const (
	PurposeVerify = "verify"
	PurposeReset  = "reset"
)

// OTP is a single-use code or token. Only its SHA-256 hash is stored.
type OTP struct {
	ID        string
	UserID    string
	Purpose   string
	CodeHash  string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

type Announcement struct {
	ID          string
	Title       string
	TitleSlug   string
	Header      string
	Body        string
	BannerImage string
	Status      string
	PostedBy    string
	CreatedAt   time.Time
}

type Complaint struct {
	ID          string
	ResidentID  string
	Category    string
	Description string
	Status      string
	CreatedAt   time.Time
}
