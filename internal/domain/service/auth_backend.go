package service

import (
	"context"

	"cinvoluntario/internal/domain/entity"
)

// RegisterInput is the account payload accepted by CreateAccount.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     entity.Role
	Name     string
}

// AuthBackend is the strategy interface between the session manager and
// whatever actually authenticates users. There are two implementations:
// the remote HTTP backend and the local seeded table used in development.
// The mode is selected once at startup; no other code branches on it.
type AuthBackend interface {
	// Authenticate exchanges credentials for a session token. Failures map
	// onto the domain error taxonomy (invalid credentials, connection, ...).
	Authenticate(ctx context.Context, cred entity.Credential) (entity.Token, error)

	// CreateAccount registers a new user. It does not authenticate; the
	// session manager follows up with Authenticate to honor the
	// register-then-auto-login contract.
	CreateAccount(ctx context.Context, input RegisterInput) (*entity.User, error)

	// FetchSelf resolves the identity behind the currently stored token.
	// An invalid or expired token yields domainerrors.ErrSessionExpired.
	FetchSelf(ctx context.Context) (*entity.User, error)

	// Invalidate tells the backend the token is no longer in use. Best
	// effort: callers ignore the result for state purposes.
	Invalidate(ctx context.Context, token string) error
}
