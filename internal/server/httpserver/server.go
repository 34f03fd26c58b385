// Package httpserver exposes the StaffView API over HTTP with Fiber.
//
// Routes:
//
//	POST   /auth      sign in, returns {email, token}
//	DELETE /auth      sign out (token required)
//	GET    /employee  employee directory (token required), ?page=&size=
//	GET    /health    liveness
//
// In production mode /auth and /employee also require a signed hash header.
package httpserver

import (
	"context"
	"slices"
	"time"

	"github.com/dmitrijs2005/staffview/internal/logging"
	"github.com/dmitrijs2005/staffview/internal/server/models"
	"github.com/dmitrijs2005/staffview/internal/server/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const shutdownTimeout = 10 * time.Second

// AuthService is the part of services.AuthService used by the API.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Authenticate(ctx context.Context, token string) (models.Session, error)
	Logout(ctx context.Context, token string) error
}

// EmployeeService is the part of services.EmployeeService used by the API.
type EmployeeService interface {
	List(ctx context.Context, page, size int) (services.EmployeePage, error)
}

// Options configure the server.
type Options struct {
	Addr       string
	Production bool
	HashKey    []byte
	// Now defaults to time.Now. Used for hash expiry checks.
	Now func() time.Time
}

type Server struct {
	app  *fiber.App
	addr string
	log  logging.Logger
}

func New(auth AuthService, employees EmployeeService, opts Options, log logging.Logger) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	app := fiber.New(fiber.Config{
		AppName:               "staffview",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           60 * time.Second,
		ErrorHandler:          errorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	var public []fiber.Handler
	if opts.Production {
		public = append(public, HashMiddleware(opts.HashKey, opts.Now))
	}
	protected := slices.Concat(public, []fiber.Handler{TokenMiddleware(auth)})

	ah := &authHandler{auth: auth}
	eh := &employeeHandler{employees: employees}

	app.Post("/auth", slices.Concat(public, []fiber.Handler{ah.login})...)
	app.Delete("/auth", slices.Concat(protected, []fiber.Handler{ah.logout})...)
	app.Get("/employee", slices.Concat(protected, []fiber.Handler{eh.list})...)

	return &Server{app: app, addr: opts.Addr, log: log}
}

// App exposes the underlying Fiber app, mostly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "http server listening", "addr", s.addr)
		errCh <- s.app.Listen(s.addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info(ctx, "shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.app.ShutdownWithContext(shutdownCtx)
}
