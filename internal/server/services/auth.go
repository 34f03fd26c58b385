// Package services contains server-side business logic: sign-in sessions,
// the employee directory and demo data seeding.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/staffview/internal/common"
	"github.com/dmitrijs2005/staffview/internal/logging"
	"github.com/dmitrijs2005/staffview/internal/server/models"
	"github.com/dmitrijs2005/staffview/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/staffview/internal/server/sessions"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService signs users in and out and resolves tokens to sessions.
type AuthService struct {
	repos      repomanager.RepositoryManager
	sessions   sessions.Store
	ttl        time.Duration
	log        logging.Logger
	now        func() time.Time
	bcryptCost int
}

func NewAuthService(m repomanager.RepositoryManager, store sessions.Store, ttl time.Duration, log logging.Logger) *AuthService {
	return &AuthService{
		repos:      m,
		sessions:   store,
		ttl:        ttl,
		log:        log,
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// dummyHash is compared against when the email is unknown so both paths
// cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("staffview-dummy-password"), bcrypt.MinCost)

// Login checks credentials and opens a session. Unknown emails and wrong
// passwords both yield common.ErrorUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.repos.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", nil, common.ErrorUnauthorized
		}
		s.log.Error(ctx, "user lookup failed", "error", err)
		return "", nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", nil, common.ErrorUnauthorized
	}

	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: s.now().Add(s.ttl).UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		s.log.Error(ctx, "session create failed", "error", err)
		return "", nil, common.ErrorInternal
	}

	s.log.Info(ctx, "user logged in", "user_id", user.ID)
	return EncodeToken(session), user, nil
}

// Authenticate resolves a token to its live session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (models.Session, error) {
	t, err := ParseToken(token)
	if err != nil {
		return models.Session{}, err
	}

	session, err := s.sessions.Get(ctx, t.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return models.Session{}, common.ErrTokenExpired
		}
		s.log.Error(ctx, "session lookup failed", "error", err)
		return models.Session{}, common.ErrorInternal
	}
	if session.UserID != t.Subject {
		return models.Session{}, common.ErrInvalidToken
	}
	return session, nil
}

// Logout deletes the session behind token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	session, err := s.Authenticate(ctx, token)
	if err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		s.log.Error(ctx, "session delete failed", "error", err)
		return common.ErrorInternal
	}
	s.log.Info(ctx, "user logged out", "user_id", session.UserID)
	return nil
}

// CreateUser registers an account with a bcrypt password hash.
func (s *AuthService) CreateUser(ctx context.Context, email, password string) (*models.User, error) {
	hash, err := s.hashPassword(email, password)
	if err != nil {
		return nil, err
	}
	u, err := s.repos.Users().Create(ctx, &models.User{Email: email, PasswordHash: hash})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

func (s *AuthService) hashPassword(email, password string) ([]byte, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}
