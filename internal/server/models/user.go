// Package models holds the server-side domain types shared by repositories,
// services and the HTTP layer.
package models

import "time"

// User is an account allowed to sign in. PasswordHash is a bcrypt hash.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
