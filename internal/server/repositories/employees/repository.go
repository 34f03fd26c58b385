// Package employees stores the employee directory.
package employees

import (
	"context"

	"github.com/dmitrijs2005/staffview/internal/server/models"
)

// Repository lists employees ordered by last name, first name and id.
type Repository interface {
	// Create assigns a new ID when e.ID is empty.
	Create(ctx context.Context, e *models.Employee) (*models.Employee, error)
	// List returns at most limit employees after skipping offset. A limit of
	// zero or less returns everything from offset on.
	List(ctx context.Context, offset, limit int) ([]models.Employee, error)
	Count(ctx context.Context) (int, error)
}
