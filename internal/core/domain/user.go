package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an identity and credential record. Email is the identity key and
// is unique across the collection. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	UserName     string    `json:"userName"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	Image        string    `json:"image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfileUpdate carries the mutable profile fields. Empty fields are skipped
// when applying the update; password and role are not reachable through this
// path.
type ProfileUpdate struct {
	Name     string
	UserName string
	Phone    string
	Image    string
}

// Empty reports whether the update would change nothing.
func (p ProfileUpdate) Empty() bool {
	return p.Name == "" && p.UserName == "" && p.Phone == "" && p.Image == ""
}
