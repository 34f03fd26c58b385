package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/staffview/internal/server/models"
)

// MemoryStore keeps sessions in a map. Expired entries are dropped when
// they are read and swept on every Create.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]models.Session
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]models.Session), now: time.Now}
}

func (m *MemoryStore) Create(_ context.Context, s models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked(m.now())
	m.items[s.ID] = s
	return nil
}

func (m *MemoryStore) sweepLocked(now time.Time) {
	for id, s := range m.items {
		if s.Expired(now) {
			delete(m.items, id)
		}
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.items[id]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	if s.Expired(m.now()) {
		delete(m.items, id)
		return models.Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

func (m *MemoryStore) Close() error { return nil }
