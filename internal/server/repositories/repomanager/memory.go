package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/staffview/internal/server/repositories/employees"
	"github.com/dmitrijs2005/staffview/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps everything in process memory. Transactions
// are serialized with a lock and are not rolled back on error.
type MemoryRepositoryManager struct {
	mu        sync.RWMutex
	users     *users.MemoryRepository
	employees *employees.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:     users.NewMemoryRepository(),
		employees: employees.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository         { return m.users }
func (m *MemoryRepositoryManager) Employees() employees.Repository { return m.employees }

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Tx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx, m)
}

func (m *MemoryRepositoryManager) ReadTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fn(ctx, m)
}

func (m *MemoryRepositoryManager) Close() error { return nil }

var (
	_ RepositoryManager = (*MemoryRepositoryManager)(nil)
	_ RepositoryManager = (*PostgresRepositoryManager)(nil)
)
