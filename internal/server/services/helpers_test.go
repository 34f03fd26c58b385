package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/staffview/internal/logging"
	"github.com/dmitrijs2005/staffview/internal/server/models"
	"github.com/dmitrijs2005/staffview/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/staffview/internal/server/sessions"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Now().UTC().Truncate(time.Second)

func newTestAuth(t *testing.T) (*AuthService, *repomanager.MemoryRepositoryManager, *sessions.MemoryStore) {
	t.Helper()
	m := repomanager.NewMemoryRepositoryManager()
	store := sessions.NewMemoryStore()
	s := NewAuthService(m, store, time.Hour, logging.Nop{})
	s.bcryptCost = bcrypt.MinCost
	s.now = func() time.Time { return testNow }
	return s, m, store
}

func mustCreateUser(t *testing.T, s *AuthService, email, password string) *models.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), email, password)
	require.NoError(t, err)
	return u
}

// failingStore fails every operation.
type failingStore struct{}

var errStore = errors.New("store down")

func (failingStore) Create(context.Context, models.Session) error { return errStore }
func (failingStore) Get(context.Context, string) (models.Session, error) {
	return models.Session{}, errStore
}
func (failingStore) Delete(context.Context, string) error { return errStore }
func (failingStore) Close() error                         { return nil }
