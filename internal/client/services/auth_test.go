package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/staffview/internal/client/api"
	"github.com/dmitrijs2005/staffview/internal/client/models"
	"github.com/dmitrijs2005/staffview/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/staffview/internal/client/session"
)

func newAuth(t *testing.T, fc *fakeClient) (AuthService, *session.Store, *metadata.MemoryRepository) {
	t.Helper()
	repo := metadata.NewMemoryRepository()
	store := session.NewStore(repo, "token", nil)
	return NewAuthService(fc, store, nil), store, repo
}

func TestProcessLogin(t *testing.T) {
	fc := &fakeClient{LoginRet: models.LoginResponse{Email: "a@b.c", Token: `{"sid":"1"}`}}
	svc, store, _ := newAuth(t, fc)
	ctx := context.Background()

	resp, err := svc.ProcessLogin(ctx, models.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, models.LoginResponse{Email: "a@b.c", Password: "pw", Token: `{"sid":"1"}`}, resp)
	assert.Equal(t, models.Credentials{Email: "a@b.c", Password: "pw"}, fc.LastCreds)
	assert.False(t, store.IsLoggedIn(ctx), "ProcessLogin does not store the token")
}

func TestProcessLogin_Error(t *testing.T) {
	fc := &fakeClient{LoginErr: api.ErrUnauthorized}
	svc, _, _ := newAuth(t, fc)

	_, err := svc.ProcessLogin(context.Background(), models.Credentials{Email: "a@b.c"})
	require.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestTokenDelegation(t *testing.T) {
	svc, _, _ := newAuth(t, &fakeClient{})
	ctx := context.Background()

	assert.False(t, svc.IsUserLoggedIn(ctx))
	require.NoError(t, svc.SetToken(ctx, `{"sid":"2"}`))
	assert.True(t, svc.IsUserLoggedIn(ctx))

	tok, err := svc.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"sid":"2"}`, tok)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes and clears", func(t *testing.T) {
		fc := &fakeClient{}
		svc, _, repo := newAuth(t, fc)
		require.NoError(t, svc.SetToken(ctx, `{}`))

		require.NoError(t, svc.Logout(ctx))
		assert.Equal(t, 1, fc.LogoutHits)
		m, _ := repo.List(ctx)
		assert.Empty(t, m)
	})

	t.Run("backend failure still clears", func(t *testing.T) {
		fc := &fakeClient{LogoutErr: errors.New("down")}
		svc, _, _ := newAuth(t, fc)
		require.NoError(t, svc.SetToken(ctx, `{}`))

		require.NoError(t, svc.Logout(ctx))
		assert.False(t, svc.IsUserLoggedIn(ctx))
	})

	t.Run("not logged in skips backend", func(t *testing.T) {
		fc := &fakeClient{}
		svc, _, _ := newAuth(t, fc)

		require.NoError(t, svc.Logout(ctx))
		assert.Zero(t, fc.LogoutHits)
	})
}
