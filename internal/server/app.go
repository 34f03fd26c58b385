// Package server assembles the StaffView backend: storage, sessions,
// services and the HTTP API, and runs it until a shutdown signal arrives.
package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/staffview/internal/logging"
	"github.com/dmitrijs2005/staffview/internal/server/config"
	"github.com/dmitrijs2005/staffview/internal/server/httpserver"
	"github.com/dmitrijs2005/staffview/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/staffview/internal/server/services"
	"github.com/dmitrijs2005/staffview/internal/server/sessions"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	repos    repomanager.RepositoryManager
	sessions sessions.Store
	http     *httpserver.Server
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	repos, err := newRepositoryManager(ctx, c, logger)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	store, err := newSessionStore(ctx, c, logger)
	if err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("session store init error: %w", err)
	}

	auth := services.NewAuthService(repos, store, c.SessionTTL, logger)
	employees := services.NewEmployeeService(repos)

	if c.SeedDemoData {
		if err := services.NewSeeder(repos, auth, logger).Seed(ctx); err != nil {
			_ = store.Close()
			_ = repos.Close()
			return nil, fmt.Errorf("seed error: %w", err)
		}
	}

	h := httpserver.New(auth, employees, httpserver.Options{
		Addr:       c.HTTPAddr,
		Production: c.Production,
		HashKey:    []byte(c.HashKey),
	}, logger)

	return &App{config: c, logger: logger, repos: repos, sessions: store, http: h}, nil
}

func newRepositoryManager(ctx context.Context, c *config.Config, logger logging.Logger) (repomanager.RepositoryManager, error) {
	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "no database DSN configured, data is kept in memory")
		return repomanager.NewMemoryRepositoryManager(), nil
	}
	return repomanager.NewPostgresRepositoryManager(ctx, c.DatabaseDSN)
}

func newSessionStore(ctx context.Context, c *config.Config, logger logging.Logger) (sessions.Store, error) {
	if c.RedisURL == "" {
		logger.Warn(ctx, "no redis URL configured, sessions are kept in memory")
		return sessions.NewMemoryStore(), nil
	}
	return sessions.NewRedisStore(ctx, c.RedisURL)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.http.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// releases the database and session store.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.HTTPAddr, "production", app.config.Production)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.Close(); err != nil {
		app.logger.Error(ctx, "close error", "error", err)
	}
	app.logger.Info(ctx, "app stopped")
}

func (app *App) Close() error {
	return errors.Join(app.sessions.Close(), app.repos.Close())
}
