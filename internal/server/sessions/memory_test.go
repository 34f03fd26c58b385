package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/staffview/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	m := NewMemoryStore()
	m.now = func() time.Time { return now }

	s := models.Session{ID: "s1", UserID: "u1", Email: "a@example.com", ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, m.Create(ctx, s))

	got, err := m.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	require.NoError(t, m.Delete(ctx, "s1"))
	require.NoError(t, m.Delete(ctx, "s1"))

	_, err = m.Get(ctx, "s1")
	require.ErrorIs(t, err, ErrSessionNotFound)
	require.NoError(t, m.Close())
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	m := NewMemoryStore()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Create(ctx, models.Session{ID: "s1", ExpiresAt: now.Add(time.Minute)}))

	now = now.Add(time.Minute)
	_, err := m.Get(ctx, "s1")
	require.ErrorIs(t, err, ErrSessionNotFound)

	m.mu.Lock()
	_, stillThere := m.items["s1"]
	m.mu.Unlock()
	assert.False(t, stillThere)
}

func TestMemoryStore_CreateSweepsExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	m := NewMemoryStore()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Create(ctx, models.Session{ID: "old", ExpiresAt: now.Add(time.Minute)}))
	require.NoError(t, m.Create(ctx, models.Session{ID: "live", ExpiresAt: now.Add(time.Hour)}))

	now = now.Add(2 * time.Minute)
	require.NoError(t, m.Create(ctx, models.Session{ID: "new", ExpiresAt: now.Add(time.Hour)}))

	m.mu.Lock()
	ids := make([]string, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	m.mu.Unlock()
	assert.ElementsMatch(t, []string{"live", "new"}, ids)
}
