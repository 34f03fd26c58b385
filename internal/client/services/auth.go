// Package services contains application services for the StaffView client.
// They build requests for the backend and keep the local session in step
// with the answers.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/staffview/internal/client/api"
	"github.com/dmitrijs2005/staffview/internal/client/models"
	"github.com/dmitrijs2005/staffview/internal/logging"
)

// SessionStore is the part of session.Store the services use.
type SessionStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	IsLoggedIn(ctx context.Context) bool
	Clear(ctx context.Context) error
}

// AuthService defines authentication operations for the client.
//
// Contract:
//   - ProcessLogin: post credentials to the backend and return its answer.
//     The token is not stored; the caller decides.
//   - IsUserLoggedIn, GetToken, SetToken: local session state.
//   - Logout: revoke the backend session (best effort) and wipe local state.
type AuthService interface {
	ProcessLogin(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)
	IsUserLoggedIn(ctx context.Context) bool
	GetToken(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Logout(ctx context.Context) error
}

type authService struct {
	client  api.Client
	session SessionStore
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, session SessionStore, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop{}
	}
	return &authService{client: client, session: session, log: log}
}

// ProcessLogin returns the submitted email and password together with the
// token, when the backend issued one.
func (a *authService) ProcessLogin(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	resp, err := a.client.Login(ctx, creds)
	if err != nil {
		return models.LoginResponse{}, err
	}
	if resp.Email == "" {
		resp.Email = creds.Email
	}
	resp.Password = creds.Password
	return resp, nil
}

func (a *authService) IsUserLoggedIn(ctx context.Context) bool {
	return a.session.IsLoggedIn(ctx)
}

func (a *authService) GetToken(ctx context.Context) (string, error) {
	return a.session.Token(ctx)
}

func (a *authService) SetToken(ctx context.Context, token string) error {
	return a.session.SetToken(ctx, token)
}

// Logout clears local state even when the backend call fails.
func (a *authService) Logout(ctx context.Context) error {
	if a.session.IsLoggedIn(ctx) {
		if err := a.client.Logout(ctx); err != nil {
			a.log.Warn(ctx, "backend logout failed", "error", err)
		}
	}
	if err := a.session.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
