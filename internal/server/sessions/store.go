// Package sessions keeps live login sessions, in memory or in Redis.
package sessions

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/staffview/internal/server/models"
)

// ErrSessionNotFound is returned for unknown, deleted or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

type Store interface {
	Create(ctx context.Context, s models.Session) error
	// Get returns ErrSessionNotFound when id is unknown or expired.
	Get(ctx context.Context, id string) (models.Session, error)
	// Delete is idempotent.
	Delete(ctx context.Context, id string) error
	Close() error
}
