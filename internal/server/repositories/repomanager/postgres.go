package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/staffview/internal/dbx"
	"github.com/dmitrijs2005/staffview/internal/server/migrations"
	"github.com/dmitrijs2005/staffview/internal/server/repositories/employees"
	"github.com/dmitrijs2005/staffview/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories.
type PostgresRepositoryManager struct {
	db *sql.DB
}

type boundRepositories struct {
	db dbx.DBTX
}

func (b boundRepositories) Users() users.Repository {
	return users.NewPostgresRepository(b.db)
}

func (b boundRepositories) Employees() employees.Repository {
	return employees.NewPostgresRepository(b.db)
}

// NewPostgresRepositoryManager opens dsn with the pgx driver and checks the
// connection.
func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return NewPostgresRepositoryManagerFromDB(db), nil
}

// NewPostgresRepositoryManagerFromDB wraps an already open handle.
func NewPostgresRepositoryManagerFromDB(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{db: db}
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return boundRepositories{db: m.db}.Users()
}

func (m *PostgresRepositoryManager) Employees() employees.Repository {
	return boundRepositories{db: m.db}.Employees()
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

func (m *PostgresRepositoryManager) Tx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, boundRepositories{db: tx})
	})
}

func (m *PostgresRepositoryManager) ReadTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	_, err := dbx.ReadOnly(ctx, m.db, func(ctx context.Context, tx dbx.DBTX) (struct{}, error) {
		return struct{}{}, fn(ctx, boundRepositories{db: tx})
	})
	return err
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
