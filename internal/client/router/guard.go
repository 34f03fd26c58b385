package router

import (
	"context"

	"github.com/dmitrijs2005/staffview/internal/logging"
)

// AuthPath is where rejected navigations are sent.
const AuthPath = "/auth"

// SessionState is the part of the session store the auth guard needs.
type SessionState interface {
	IsLoggedIn(ctx context.Context) bool
	Clear(ctx context.Context) error
}

// AuthGuard lets a navigation through only while a usable session token is
// stored. On rejection it wipes the local store and redirects to AuthPath.
type AuthGuard struct {
	session SessionState
	log     logging.Logger
}

func NewAuthGuard(session SessionState, log logging.Logger) *AuthGuard {
	if log == nil {
		log = logging.Nop{}
	}
	return &AuthGuard{session: session, log: log}
}

func (g *AuthGuard) CanActivate(ctx context.Context, snap *Snapshot) Decision {
	if g.session.IsLoggedIn(ctx) {
		return Allow()
	}

	if err := g.session.Clear(ctx); err != nil {
		g.log.Error(ctx, "cannot clear local state", "error", err)
	}
	g.log.Info(ctx, "access rejected, not logged in", "url", snap.URL)
	return Deny(AuthPath)
}
