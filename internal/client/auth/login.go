// Package auth is the lazily loaded login module.
package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/asaskevich/govalidator"

	"github.com/dmitrijs2005/staffview/internal/client/api"
	"github.com/dmitrijs2005/staffview/internal/client/models"
	"github.com/dmitrijs2005/staffview/internal/client/router"
	"github.com/dmitrijs2005/staffview/internal/client/services"
	"github.com/dmitrijs2005/staffview/internal/logging"
)

// AfterLoginPath is where a successful login lands.
const AfterLoginPath = "/employee"

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("email is not a valid address")
	ErrPasswordRequired = errors.New("password is required")
)

// Prompter collects form input.
type Prompter interface {
	Text(prompt string) (string, error)
	Password(prompt string) (string, error)
}

// Validate applies the login form rules: both fields are required and the
// email must look like an address.
func Validate(c models.Credentials) error {
	var errs []error
	switch {
	case strings.TrimSpace(c.Email) == "":
		errs = append(errs, ErrEmailRequired)
	case !govalidator.IsEmail(c.Email):
		errs = append(errs, ErrEmailInvalid)
	}
	if c.Password == "" {
		errs = append(errs, ErrPasswordRequired)
	}
	return errors.Join(errs...)
}

// LoginComponent asks for credentials, submits them and, when a session
// token comes back, stores it and moves on to the employee list.
type LoginComponent struct {
	auth services.AuthService
	nav  router.Navigator
	in   Prompter
	out  io.Writer
	log  logging.Logger
}

func NewLoginComponent(auth services.AuthService, nav router.Navigator, in Prompter, out io.Writer, log logging.Logger) *LoginComponent {
	if log == nil {
		log = logging.Nop{}
	}
	return &LoginComponent{auth: auth, nav: nav, in: in, out: out, log: log}
}

// Render runs one login attempt. Validation and credential errors are shown
// to the user and leave them on the login view.
func (c *LoginComponent) Render(ctx context.Context, _ *router.Snapshot) error {
	fmt.Fprintln(c.out, "Please log in.")

	email, err := c.in.Text("Email")
	if err != nil {
		return err
	}
	password, err := c.in.Password("Password")
	if err != nil {
		return err
	}

	return c.Submit(ctx, models.Credentials{Email: strings.TrimSpace(email), Password: password})
}

// Submit is the form's submit handler.
func (c *LoginComponent) Submit(ctx context.Context, creds models.Credentials) error {
	if err := Validate(creds); err != nil {
		fmt.Fprintln(c.out, strings.ReplaceAll(err.Error(), "\n", "; "))
		return nil
	}

	resp, err := c.auth.ProcessLogin(ctx, creds)
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		fmt.Fprintln(c.out, "Invalid email or password.")
		return nil
	case err != nil:
		c.log.Error(ctx, "login failed", "email", creds.Email, "error", err)
		return err
	}

	if resp.Token == "" {
		fmt.Fprintln(c.out, "Login was not accepted.")
		return nil
	}

	if err := c.auth.SetToken(ctx, resp.Token); err != nil {
		return err
	}
	c.log.Info(ctx, "logged in", "email", resp.Email)
	fmt.Fprintf(c.out, "Logged in as %s.\n", resp.Email)

	return c.nav.Navigate(ctx, AfterLoginPath)
}

// Routes is the child route table loaded under /auth.
func Routes(login *LoginComponent) []*router.Route {
	return []*router.Route{{Path: "", Component: login}}
}
