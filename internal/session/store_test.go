package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/szabodaniel/boardgame-collection/internal/model"
)

type fakeAuthAPI struct {
	meErr    error
	user     model.User
	loginErr error
	resp     model.LoginResponse

	meCalls    int
	loginCalls int
}

func (f *fakeAuthAPI) Me(context.Context, string) (model.User, error) {
	f.meCalls++
	if f.meErr != nil {
		return model.User{}, f.meErr
	}
	return f.user, nil
}

func (f *fakeAuthAPI) LoginGoogle(context.Context, string) (model.LoginResponse, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return model.LoginResponse{}, f.loginErr
	}
	return f.resp, nil
}

func tempTokens(t *testing.T) *TokenStorage {
	t.Helper()
	return NewTokenStorage(filepath.Join(t.TempDir(), "token"))
}

func TestBootstrapWithoutToken(t *testing.T) {
	api := &fakeAuthAPI{}
	store := NewStore(zap.NewNop(), api, tempTokens(t))

	require.Equal(t, StateUnknown, store.State())
	require.Equal(t, StateUnauthenticated, store.Bootstrap(context.Background()))
	require.Zero(t, api.meCalls)
	require.False(t, store.Authenticated())
}

func TestBootstrapRestoresSession(t *testing.T) {
	api := &fakeAuthAPI{user: model.User{ID: "u1", Name: "Anna", Email: "anna@example.com"}}
	tokens := tempTokens(t)
	require.NoError(t, tokens.Save("stored-token"))
	store := NewStore(zap.NewNop(), api, tokens)

	require.Equal(t, StateAuthenticated, store.Bootstrap(context.Background()))
	require.Equal(t, "stored-token", store.Token())
	require.Equal(t, "Anna", store.User().Name)
}

func TestBootstrapRejectedTokenClearsFile(t *testing.T) {
	api := &fakeAuthAPI{meErr: errors.New("401")}
	path := filepath.Join(t.TempDir(), "token")
	tokens := NewTokenStorage(path)
	require.NoError(t, tokens.Save("stale-token"))
	store := NewStore(zap.NewNop(), api, tokens)

	require.Equal(t, StateUnauthenticated, store.Bootstrap(context.Background()))
	require.Empty(t, store.Token())

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestLoginPersistsToken(t *testing.T) {
	api := &fakeAuthAPI{resp: model.LoginResponse{
		AccessToken: "fresh-token",
		User:        model.User{ID: "u1", Name: "Anna"},
	}}
	tokens := tempTokens(t)
	store := NewStore(zap.NewNop(), api, tokens)

	require.NoError(t, store.Login(context.Background(), "credential"))
	require.True(t, store.Authenticated())
	require.Equal(t, "fresh-token", store.Token())

	persisted, err := tokens.Load()
	require.NoError(t, err)
	require.Equal(t, "fresh-token", persisted)
}

func TestLoginFailureLeavesNothingBehind(t *testing.T) {
	api := &fakeAuthAPI{loginErr: errors.New("invalid credential")}
	tokens := tempTokens(t)
	store := NewStore(zap.NewNop(), api, tokens)
	store.Bootstrap(context.Background())

	require.Error(t, store.Login(context.Background(), "bad"))
	require.False(t, store.Authenticated())

	persisted, err := tokens.Load()
	require.NoError(t, err)
	require.Empty(t, persisted)
}

func TestLogoutInvokesProviderSignOut(t *testing.T) {
	api := &fakeAuthAPI{resp: model.LoginResponse{AccessToken: "tok"}}
	signedOut := false
	store := NewStore(zap.NewNop(), api, tempTokens(t),
		WithProviderSignOut(func() error { signedOut = true; return nil }))
	require.NoError(t, store.Login(context.Background(), "credential"))

	store.Logout()
	require.True(t, signedOut)
	require.Equal(t, StateUnauthenticated, store.State())
	require.Empty(t, store.Token())
}

func TestForgetClearsSession(t *testing.T) {
	api := &fakeAuthAPI{resp: model.LoginResponse{AccessToken: "tok", User: model.User{ID: "u1"}}}
	tokens := tempTokens(t)
	store := NewStore(zap.NewNop(), api, tokens)
	require.NoError(t, store.Login(context.Background(), "credential"))

	store.Forget()
	require.False(t, store.Authenticated())
	require.Equal(t, model.User{}, store.User())

	persisted, err := tokens.Load()
	require.NoError(t, err)
	require.Empty(t, persisted)
}

func TestClaimsWithoutSession(t *testing.T) {
	store := NewStore(zap.NewNop(), &fakeAuthAPI{}, tempTokens(t))
	_, err := store.Claims()
	require.Error(t, err)
}
