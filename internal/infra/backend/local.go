package backend

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"cinvoluntario/config"
	"cinvoluntario/internal/domain/entity"
	domainerrors "cinvoluntario/internal/domain/errors"
	"cinvoluntario/internal/domain/service"
	"cinvoluntario/internal/errors"
)

// account is one row of the local identity table.
type account struct {
	user entity.User
	hash string
}

// localBackend implements AuthBackend against a seeded in-process table,
// replacing the dev-mode branches that were scattered through the original
// auth logic. Seed passwords are bcrypt-hashed at construction and the
// plaintext is dropped; tokens are real signed JWTs so the restore path
// exercises the same validation as everything else.
type localBackend struct {
	mu       sync.Mutex
	accounts map[int64]*account
	index    map[string]int64 // lowercased username and email -> user ID
	nextID   int64

	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	tokens   service.TokenStore
	logger   *slog.Logger
}

// NewLocalBackend builds the seeded backend from config.
func NewLocalBackend(
	cfg *config.Config,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	tokens service.TokenStore,
	logger *slog.Logger,
) (service.AuthBackend, error) {
	b := &localBackend{
		accounts: make(map[int64]*account),
		index:    make(map[string]int64),
		hasher:   hasher,
		tokenSvc: tokenSvc,
		tokens:   tokens,
		logger:   logger,
	}

	for _, seed := range cfg.Auth.Seeds {
		role := entity.NormalizeRole(seed.Role)
		if !role.IsValid() {
			return nil, errors.Errorf("seed user %q has invalid role %q", seed.Username, seed.Role)
		}
		hash, err := hasher.Hash(seed.Password)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to hash seed password for %q", seed.Username)
		}

		b.nextID++
		b.accounts[b.nextID] = &account{
			user: entity.User{
				ID:       b.nextID,
				Username: seed.Username,
				Email:    seed.Email,
				Role:     role,
				Name:     seed.Name,
			},
			hash: hash,
		}
		b.index[strings.ToLower(seed.Username)] = b.nextID
		b.index[strings.ToLower(seed.Email)] = b.nextID
	}

	logger.Info("local auth backend seeded", slog.Int("users", len(cfg.Auth.Seeds)))

	return b, nil
}

// Authenticate matches the identifier against username or email and checks
// the secret against the stored hash.
func (b *localBackend) Authenticate(ctx context.Context, cred entity.Credential) (entity.Token, error) {
	b.mu.Lock()
	acc := b.lookup(cred.Identifier)
	b.mu.Unlock()

	if acc == nil || !b.hasher.Check(cred.Secret, acc.hash) {
		return entity.Token{}, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	signed, err := b.tokenSvc.IssueToken(&acc.user)
	if err != nil {
		return entity.Token{}, errors.Wrap(err, "failed to issue dev token")
	}

	return entity.Token{AccessToken: signed, TokenType: "bearer"}, nil
}

// CreateAccount appends a new user to the table.
func (b *localBackend) CreateAccount(ctx context.Context, input service.RegisterInput) (*entity.User, error) {
	if !input.Role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid role %q", input.Role)
	}

	hash, err := b.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.lookup(input.Username) != nil || b.lookup(input.Email) != nil {
		return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
	}

	name := input.Name
	if name == "" {
		name = input.Username
	}

	b.nextID++
	acc := &account{
		user: entity.User{
			ID:       b.nextID,
			Username: input.Username,
			Email:    input.Email,
			Role:     input.Role,
			Name:     name,
		},
		hash: hash,
	}
	b.accounts[b.nextID] = acc
	b.index[strings.ToLower(input.Username)] = b.nextID
	b.index[strings.ToLower(input.Email)] = b.nextID

	user := acc.user

	return &user, nil
}

// FetchSelf validates the stored token and returns the identity it names.
func (b *localBackend) FetchSelf(ctx context.Context) (*entity.User, error) {
	token, err := b.tokens.Load(ctx)
	if err != nil || token == "" {
		return nil, errors.WithStack(domainerrors.ErrSessionExpired)
	}

	claims, err := b.tokenSvc.ValidateToken(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionExpired, "invalid dev token")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	acc, ok := b.accounts[claims.UserID]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrSessionExpired)
	}

	user := acc.user

	return &user, nil
}

// Invalidate is a no-op locally; dev tokens simply expire.
func (b *localBackend) Invalidate(ctx context.Context, token string) error {
	b.logger.Debug("local token invalidated")

	return nil
}

// lookup must be called with the mutex held.
func (b *localBackend) lookup(identifier string) *account {
	id, ok := b.index[strings.ToLower(strings.TrimSpace(identifier))]
	if !ok {
		return nil
	}

	return b.accounts[id]
}
