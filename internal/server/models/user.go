package models

import "time"

// User is a registered listener account. PasswordHash is excluded from JSON
// so the digest can never leak into a response body; Sanitized copies handed
// out by the service additionally clear the field entirely.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Playlist     []string  `json:"playlist"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Sanitized returns a copy of the user with the password digest stripped.
// This is the only form that crosses the service boundary.
func (u *User) Sanitized() *User {
	c := *u
	c.PasswordHash = ""
	if c.Playlist == nil {
		c.Playlist = []string{}
	}
	return &c
}
