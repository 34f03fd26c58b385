package models

import "time"

// Session is a live login. Its ID is embedded in the token handed to the
// client.
type Session struct {
	ID        string
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// Expired reports whether the session is past its deadline at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
