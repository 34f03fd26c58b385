package employees

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/staffview/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps employees in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	items []models.Employee
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, e *models.Employee) (*models.Employee, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, *e)
	slices.SortFunc(r.items, compareEmployees)
	return e, nil
}

func (r *MemoryRepository) List(_ context.Context, offset, limit int) ([]models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offset = max(offset, 0)
	if offset >= len(r.items) {
		return []models.Employee{}, nil
	}
	end := len(r.items)
	if limit > 0 {
		end = min(end, offset+limit)
	}
	return slices.Clone(r.items[offset:end]), nil
}

func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

func compareEmployees(a, b models.Employee) int {
	return cmp.Or(
		cmp.Compare(a.LastName, b.LastName),
		cmp.Compare(a.FirstName, b.FirstName),
		cmp.Compare(a.ID, b.ID),
	)
}

var (
	_ Repository = (*MemoryRepository)(nil)
	_ Repository = (*PostgresRepository)(nil)
)
