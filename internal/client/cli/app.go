package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/staffview/internal/client/api"
	"github.com/dmitrijs2005/staffview/internal/client/config"
	"github.com/dmitrijs2005/staffview/internal/client/interceptor"
	"github.com/dmitrijs2005/staffview/internal/client/models"
	"github.com/dmitrijs2005/staffview/internal/client/router"
	"github.com/dmitrijs2005/staffview/internal/client/services"
	"github.com/dmitrijs2005/staffview/internal/client/session"
	"github.com/dmitrijs2005/staffview/internal/client/storage"
	"github.com/dmitrijs2005/staffview/internal/logging"
)

// App is the running terminal client.
type App struct {
	config          *config.Config
	log             logging.Logger
	storage         *storage.Storage
	session         *session.Store
	authService     services.AuthService
	employeeService services.EmployeeService
	router          *router.Router
	reader          *bufio.Reader
	out             io.Writer
	page            models.Page
}

// NewApp opens local storage and wires the backend client behind the
// request interceptor.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	st, err := storage.InitDatabase(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DBPath, "error", err)
		return nil, err
	}

	if c.UsesDefaultPassphrase() {
		log.Warn(ctx, "session token is sealed with the built-in passphrase; set a storage passphrase to change it")
	}

	sess := session.NewStore(st.Metadata, c.StoragePassphrase, log)

	tr := interceptor.New(nil, sess, interceptor.Options{
		Production:     c.Production,
		HashKey:        []byte(c.HashKey),
		DefaultTimeout: c.RequestTimeout,
	}, log)
	client := api.NewHTTPClient(c.APIURL, &http.Client{Transport: tr}, log)

	return newApp(c, log, st, sess, client, in, out), nil
}

func newApp(c *config.Config, log logging.Logger, st *storage.Storage, sess *session.Store, client api.Client, in io.Reader, out io.Writer) *App {
	a := &App{
		config:          c,
		log:             log,
		storage:         st,
		session:         sess,
		authService:     services.NewAuthService(client, sess, log),
		employeeService: services.NewEmployeeService(client),
		reader:          bufio.NewReader(in),
		out:             out,
	}
	a.router = router.New(a.routes(), log)
	return a
}

// Run navigates to the start page and serves commands until the user quits
// or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.storage.Close(); err != nil {
			a.log.Error(ctx, "closing storage", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "StaffView (type 'help' for commands)")
	if err := a.Navigate(ctx, "/"); err != nil {
		printlnFn("Error:", err)
	}

	runREPL(ctx, a, a.status, a.reader)
}

// Navigate routes to url. When the backend rejects the stored session the
// local state is wiped and the login view is shown instead.
func (a *App) Navigate(ctx context.Context, url string) error {
	err := a.router.Navigate(ctx, url)
	if errors.Is(err, api.ErrUnauthorized) && !strings.HasPrefix(url, router.AuthPath) {
		a.log.Info(ctx, "session rejected by backend", "url", url)
		if cerr := a.session.Clear(ctx); cerr != nil {
			a.log.Error(ctx, "cannot clear local state", "error", cerr)
		}
		return a.router.Navigate(ctx, router.AuthPath)
	}
	return err
}

// Text and Password make App the login form's Prompter.
func (a *App) Text(prompt string) (string, error) {
	return GetSimpleText(a.reader, prompt, a.out)
}

func (a *App) Password(prompt string) (string, error) {
	return GetPassword(a.reader, prompt, a.out)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.authService.IsUserLoggedIn(ctx)
}

func (a *App) status() string {
	state := "guest"
	if a.isLoggedIn(context.Background()) {
		state = "online"
	}
	return fmt.Sprintf("%s %s", a.router.URL(), state)
}

func (a *App) Login(ctx context.Context) error {
	return a.Navigate(ctx, router.AuthPath)
}

func (a *App) List(ctx context.Context) error {
	return a.Navigate(ctx, a.listURL())
}

func (a *App) Page(ctx context.Context, number, size int) error {
	a.page = models.Page{Number: number, Size: size}
	return a.List(ctx)
}

func (a *App) Go(ctx context.Context, url string) error {
	return a.Navigate(ctx, url)
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.page = models.Page{}
	a.router.Deactivate(ctx)
	printlnFn("Logged out.")
	return nil
}

func (a *App) listURL() string {
	q := url.Values{}
	if a.page.Number > 0 {
		q.Set("page", strconv.Itoa(a.page.Number))
	}
	if a.page.Size > 0 {
		q.Set("size", strconv.Itoa(a.page.Size))
	}
	if len(q) == 0 {
		return "/employee"
	}
	return "/employee?" + q.Encode()
}
