// Package session keeps the client's session token sealed in the local
// key/value store.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/staffview/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/staffview/internal/common"
	"github.com/dmitrijs2005/staffview/internal/cryptox"
	"github.com/dmitrijs2005/staffview/internal/logging"
)

// Store reads and writes the session token. The token is sealed with
// cryptox under the configured passphrase before it reaches storage.
type Store struct {
	repo       metadata.Repository
	passphrase string
	log        logging.Logger

	// opening a sealed value runs argon2, so the last result is kept
	mu         sync.Mutex
	lastSealed string
	lastPlain  string
}

func NewStore(repo metadata.Repository, passphrase string, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop{}
	}
	return &Store{repo: repo, passphrase: passphrase, log: log}
}

// Token returns the stored session token, or "" when there is none.
// A value that cannot be opened is logged and reported as absent.
func (s *Store) Token(ctx context.Context) (string, error) {
	raw, err := s.repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	if len(raw) == 0 {
		return "", nil
	}
	sealed := string(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	if sealed == s.lastSealed {
		return s.lastPlain, nil
	}

	plain, err := cryptox.OpenString(sealed, s.passphrase)
	if err != nil {
		if errors.Is(err, cryptox.ErrMalformed) {
			s.log.Warn(ctx, "stored token cannot be opened")
			return "", nil
		}
		return "", err
	}

	s.lastSealed, s.lastPlain = sealed, plain
	return plain, nil
}

// SetToken seals token and stores it.
func (s *Store) SetToken(ctx context.Context, token string) error {
	sealed, err := cryptox.SealString(token, s.passphrase)
	if err != nil {
		return fmt.Errorf("seal token: %w", err)
	}
	if err := s.repo.Set(ctx, common.TokenStorageKey, []byte(sealed)); err != nil {
		return fmt.Errorf("store token: %w", err)
	}

	s.mu.Lock()
	s.lastSealed, s.lastPlain = sealed, token
	s.mu.Unlock()
	return nil
}

// IsLoggedIn holds when a token is stored, it opens, and its plaintext is
// valid JSON.
func (s *Store) IsLoggedIn(ctx context.Context) bool {
	token, err := s.Token(ctx)
	if err != nil {
		s.log.Error(ctx, "session check failed", "error", err)
		return false
	}
	return token != "" && json.Valid([]byte(token))
}

// Clear wipes the whole local store, not just the token.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.lastSealed, s.lastPlain = "", ""
	s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear local state: %w", err)
	}
	return nil
}
