// Package common defines shared constants and sentinel errors used across
// client and server layers of StaffView. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Request hash errors.
	ErrInvalidHash = errors.New("invalid request hash")

	// ErrRequestTimeout is returned when an outgoing request exceeds its deadline.
	ErrRequestTimeout = errors.New("request timeout")
)
