package backend

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinvoluntario/config"
	"cinvoluntario/internal/domain/entity"
	domainerrors "cinvoluntario/internal/domain/errors"
	"cinvoluntario/internal/domain/service"
	"cinvoluntario/internal/errors"
	"cinvoluntario/internal/infra/rest"
	"cinvoluntario/internal/infra/store"
)

func newRemoteFixture(t *testing.T, handler http.Handler) (service.AuthBackend, service.TokenStore) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL
	cfg.API.Timeout = 2 * time.Second
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := store.NewMemoryStore()
	client := rest.NewClient(cfg, tokens, logger)

	return NewRemoteBackend(client, logger), tokens
}

func TestRemoteBackend_AuthenticateSendsFormCredentials(t *testing.T) {
	var gotUser, gotPass string
	b, _ := newRemoteFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		gotUser = r.PostFormValue("username")
		gotPass = r.PostFormValue("password")
		_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer"}`))
	}))

	token, err := b.Authenticate(context.Background(), entity.Credential{
		Identifier: "aluno@cin.ufpe.br",
		Secret:     "123456",
	})

	require.NoError(t, err)
	assert.Equal(t, "tok-1", token.AccessToken)
	assert.Equal(t, "aluno@cin.ufpe.br", gotUser)
	assert.Equal(t, "123456", gotPass)
}

func TestRemoteBackend_AuthenticateMapsRejectionToInvalidCredentials(t *testing.T) {
	b, _ := newRemoteFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Incorrect username or password"}`))
	}))

	_, err := b.Authenticate(context.Background(), entity.Credential{Identifier: "a", Secret: "b"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestRemoteBackend_AuthenticateMapsUnreachableToConnection(t *testing.T) {
	cfg := &config.Config{}
	cfg.API.BaseURL = "http://127.0.0.1:1"
	cfg.API.Timeout = 200 * time.Millisecond
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b := NewRemoteBackend(rest.NewClient(cfg, store.NewMemoryStore(), logger), logger)

	_, err := b.Authenticate(context.Background(), entity.Credential{Identifier: "a", Secret: "b"})

	assert.True(t, errors.Is(err, domainerrors.ErrConnection))
}

func TestRemoteBackend_FetchSelfUsesStoredBearer(t *testing.T) {
	b, tokens := newRemoteFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/me", r.URL.Path)
		require.Equal(t, "Bearer tok-9", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"user_id":2,"username":"aluno1","email":"aluno@cin.ufpe.br","role":"aluno","name":"Maria Santos"}`))
	}))
	require.NoError(t, tokens.Save(context.Background(), "tok-9"))

	user, err := b.FetchSelf(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)
	assert.Equal(t, entity.RoleAluno, user.Role)
}

func TestRemoteBackend_FetchSelf401IsSessionExpired(t *testing.T) {
	b, tokens := newRemoteFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	}))
	require.NoError(t, tokens.Save(context.Background(), "stale"))

	_, err := b.FetchSelf(context.Background())

	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestRemoteBackend_CreateAccountMapsConflict(t *testing.T) {
	b, _ := newRemoteFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail":"Email already registered"}`))
	}))

	_, err := b.CreateAccount(context.Background(), service.RegisterInput{
		Username: "x", Email: "x@x.com", Password: "abc123", Role: entity.RoleAluno,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestRemoteBackend_InvalidateUsesExplicitToken(t *testing.T) {
	var gotAuth string
	b, tokens := newRemoteFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/logout", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	// Store is already cleared when Invalidate runs.
	require.NoError(t, tokens.Clear(context.Background()))

	err := b.Invalidate(context.Background(), "old-token")

	require.NoError(t, err)
	assert.Equal(t, "Bearer old-token", gotAuth)
}
