// Package storage opens the client's local SQLite database and wires the
// repositories that live in it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/staffview/internal/client/migrations"
	"github.com/dmitrijs2005/staffview/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/staffview/internal/filex"
)

// Storage bundles the database handle with its repositories.
type Storage struct {
	DB       *sql.DB
	Metadata metadata.Repository
}

// Close releases the database handle.
func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// InitDatabase opens (creating if needed) the SQLite database at dsn and
// brings its schema up to date. An empty dsn keeps state in memory only.
func InitDatabase(ctx context.Context, dsn string) (*Storage, error) {
	if dsn == "" {
		return &Storage{Metadata: metadata.NewMemoryRepository()}, nil
	}

	if filex.IsPlainPath(dsn) {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one writer at a time keeps SQLite from returning SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storage{
		DB:       db,
		Metadata: metadata.NewSQLiteRepository(db),
	}, nil
}
