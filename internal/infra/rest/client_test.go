package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinvoluntario/config"
	"cinvoluntario/internal/infra/store"
)

type echoPayload struct {
	Name string `json:"name"`
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	cfg := &config.Config{}
	cfg.API.BaseURL = baseURL
	cfg.API.Timeout = 2 * time.Second
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClient(cfg, store.NewMemoryStore(), logger)
}

func TestGet_DecodesSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/estudantes/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Maria"}`))
	}))
	defer srv.Close()

	env := Get[echoPayload](context.Background(), newTestClient(t, srv.URL), "/estudantes/")

	require.True(t, env.Success)
	assert.Equal(t, "Maria", env.Data.Name)
	assert.Equal(t, http.StatusOK, env.Status)
	assert.Empty(t, env.Error)
}

func TestPost_SendsBearerWhenTokenStored(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"name":"ok"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	require.NoError(t, c.tokens.Save(context.Background(), "tok-123"))

	env := Post[echoPayload](context.Background(), c, "/projetos/", echoPayload{Name: "x"})

	require.True(t, env.Success)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestGet_AnonymousWhenNoToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	env := Get[echoPayload](context.Background(), newTestClient(t, srv.URL), "/")

	require.True(t, env.Success)
	assert.Empty(t, gotAuth)
}

func TestNon2xx_ExtractsDetailField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Credenciais inválidas"}`))
	}))
	defer srv.Close()

	env := Get[echoPayload](context.Background(), newTestClient(t, srv.URL), "/users/me")

	require.False(t, env.Success)
	assert.Equal(t, "Credenciais inválidas", env.Error)
	assert.Equal(t, http.StatusUnauthorized, env.Status)
}

func TestNon2xx_FallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	env := Get[echoPayload](context.Background(), newTestClient(t, srv.URL), "/nope")

	require.False(t, env.Success)
	assert.Equal(t, http.StatusText(http.StatusNotFound), env.Error)
}

func Test5xx_SurfacesGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream exploded`))
	}))
	defer srv.Close()

	env := Get[echoPayload](context.Background(), newTestClient(t, srv.URL), "/")

	require.False(t, env.Success)
	assert.NotContains(t, env.Error, "exploded")
}

func TestTransportFailure_ReturnsConnectionError(t *testing.T) {
	// Port 1 is never listening.
	env := Get[echoPayload](context.Background(), newTestClient(t, "http://127.0.0.1:1"), "/")

	require.False(t, env.Success)
	assert.Zero(t, env.Status)
	assert.NotEmpty(t, env.Error)
}

func TestDelete_EmptyBodyIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	env := Delete[struct{}](context.Background(), newTestClient(t, srv.URL), "/estudantes/1")

	require.True(t, env.Success)
	assert.Equal(t, http.StatusNoContent, env.Status)
}

func TestPostForm_EncodesCredentials(t *testing.T) {
	var gotContentType, gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotUser = r.PostFormValue("username")
		_, _ = w.Write([]byte(`{"name":"ok"}`))
	}))
	defer srv.Close()

	form := url.Values{}
	form.Set("username", "aluno1")
	form.Set("password", "123456")
	env := PostForm[echoPayload](context.Background(), newTestClient(t, srv.URL), "/auth/token", form)

	require.True(t, env.Success)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "aluno1", gotUser)
}

func TestTimeout_BoundsHangingBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL
	cfg.API.Timeout = 50 * time.Millisecond
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewClient(cfg, store.NewMemoryStore(), logger)

	start := time.Now()
	env := Get[echoPayload](context.Background(), c, "/")

	require.False(t, env.Success)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}
