package models

import "time"

// User is a registered account. PasswordHash holds a bcrypt hash and never
// leaves the server.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is the projection of a User that is safe to hand to clients.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (u *User) Identity() *Identity {
	return &Identity{ID: u.ID, Email: u.Email}
}
