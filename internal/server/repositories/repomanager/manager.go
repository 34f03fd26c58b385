// Package repomanager wires repository implementations to a backing store
// and exposes migrations and transactions over them.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/staffview/internal/server/repositories/employees"
	"github.com/dmitrijs2005/staffview/internal/server/repositories/users"
)

// Repositories is a set of repositories sharing one database handle.
type Repositories interface {
	Users() users.Repository
	Employees() employees.Repository
}

// RepositoryManager vends repositories and runs work in transactions.
// Repositories passed to a Tx or ReadTx callback are bound to that
// transaction and must not be used after the callback returns.
type RepositoryManager interface {
	Repositories
	RunMigrations(ctx context.Context) error
	Tx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error
	ReadTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error
	Close() error
}
