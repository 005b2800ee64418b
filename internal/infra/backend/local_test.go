package backend

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinvoluntario/config"
	"cinvoluntario/internal/domain/entity"
	domainerrors "cinvoluntario/internal/domain/errors"
	"cinvoluntario/internal/domain/service"
	"cinvoluntario/internal/errors"
	"cinvoluntario/internal/infra/auth"
	"cinvoluntario/internal/infra/store"
)

func newLocalFixture(t *testing.T) (service.AuthBackend, service.TokenStore) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth.Mode = config.AuthModeLocal
	cfg.Auth.DevSecret = "test-secret"
	cfg.Auth.TokenTTL = time.Hour
	cfg.Auth.BcryptCost = 4 // min cost keeps the tests quick
	cfg.Auth.Seeds = []config.SeedUser{
		{Username: "professor1", Email: "professor@cin.ufpe.br", Password: "123456", Role: "professor", Name: "João Silva"},
		{Username: "aluno1", Email: "aluno@cin.ufpe.br", Password: "123456", Role: "aluno", Name: "Maria Santos"},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	tokens := store.NewMemoryStore()
	b, err := NewLocalBackend(cfg, auth.NewBcryptHasher(cfg), tokenSvc, tokens, logger)
	require.NoError(t, err)

	return b, tokens
}

func TestLocalBackend_AuthenticateByEmail(t *testing.T) {
	b, _ := newLocalFixture(t)

	token, err := b.Authenticate(context.Background(), entity.Credential{
		Identifier: "aluno@cin.ufpe.br",
		Secret:     "123456",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
}

func TestLocalBackend_AuthenticateByUsername(t *testing.T) {
	b, _ := newLocalFixture(t)

	_, err := b.Authenticate(context.Background(), entity.Credential{
		Identifier: "professor1",
		Secret:     "123456",
	})

	require.NoError(t, err)
}

func TestLocalBackend_RejectsWrongPassword(t *testing.T) {
	b, _ := newLocalFixture(t)

	_, err := b.Authenticate(context.Background(), entity.Credential{
		Identifier: "aluno1",
		Secret:     "wrong",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestLocalBackend_RejectsUnknownIdentifier(t *testing.T) {
	b, _ := newLocalFixture(t)

	_, err := b.Authenticate(context.Background(), entity.Credential{
		Identifier: "ninguem@cin.ufpe.br",
		Secret:     "123456",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestLocalBackend_FetchSelfRoundTrip(t *testing.T) {
	b, tokens := newLocalFixture(t)
	ctx := context.Background()

	token, err := b.Authenticate(ctx, entity.Credential{Identifier: "aluno1", Secret: "123456"})
	require.NoError(t, err)
	require.NoError(t, tokens.Save(ctx, token.AccessToken))

	user, err := b.FetchSelf(ctx)
	require.NoError(t, err)
	assert.Equal(t, "aluno1", user.Username)
	assert.Equal(t, entity.RoleAluno, user.Role)
	assert.Equal(t, "Maria Santos", user.Name)
}

func TestLocalBackend_FetchSelfRejectsGarbageToken(t *testing.T) {
	b, tokens := newLocalFixture(t)
	ctx := context.Background()
	require.NoError(t, tokens.Save(ctx, "not-a-jwt"))

	_, err := b.FetchSelf(ctx)

	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestLocalBackend_CreateAccountThenAuthenticate(t *testing.T) {
	b, tokens := newLocalFixture(t)
	ctx := context.Background()

	user, err := b.CreateAccount(ctx, service.RegisterInput{
		Username: "x",
		Email:    "x@x.com",
		Password: "abc123",
		Role:     entity.NormalizeRole("Estudante"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAluno, user.Role)
	assert.Equal(t, "x", user.Name) // defaults to username

	token, err := b.Authenticate(ctx, entity.Credential{Identifier: "x@x.com", Secret: "abc123"})
	require.NoError(t, err)
	require.NoError(t, tokens.Save(ctx, token.AccessToken))

	self, err := b.FetchSelf(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, self.ID)
	assert.Equal(t, entity.RoleAluno, self.Role)
}

func TestLocalBackend_CreateAccountRejectsDuplicates(t *testing.T) {
	b, _ := newLocalFixture(t)

	_, err := b.CreateAccount(context.Background(), service.RegisterInput{
		Username: "outro",
		Email:    "aluno@cin.ufpe.br",
		Password: "abc123",
		Role:     entity.RoleAluno,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}
