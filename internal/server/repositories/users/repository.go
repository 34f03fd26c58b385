// Package users stores sign-in accounts.
package users

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/staffview/internal/server/models"
)

// ErrDuplicateEmail is returned by Create when the email is already taken.
var ErrDuplicateEmail = errors.New("email already registered")

type Repository interface {
	// Create stores user and fills in its ID and CreatedAt.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByEmail returns common.ErrorNotFound when no user matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}
