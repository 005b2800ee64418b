// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cinvoluntario/internal/domain/entity"
)

// State is the session lifecycle state.
type State string

const (
	// StateLoading holds between construction and the first Restore.
	StateLoading State = "loading"
	// StateUnauthenticated means no confirmed identity is held.
	StateUnauthenticated State = "unauthenticated"
	// StateAuthenticated means a token and its confirmed identity are held.
	StateAuthenticated State = "authenticated"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in. Identifier is
// deliberately abstract: the backends decide whether it names a username or
// an email.
type LoginInput struct {
	Identifier string `validate:"required"`
	Secret     string `validate:"required"`
}

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Role     string `validate:"required"`
	Name     string
}

// SessionUsecase owns the current-user identity and the token lifecycle.
// Every operation returns the uniform envelope; callers check Success and
// never see raw errors.
//
// Contract notes:
//   - Register auto-authenticates: on success the session is Authenticated
//     as the new user, no separate Login call required.
//   - Logout is idempotent and clears local state before (and regardless
//     of) the best-effort backend notification.
type SessionUsecase interface {
	// Restore runs the startup validity check, resolving a previously
	// stored token into an identity. It moves the session out of
	// StateLoading exactly once per construction.
	Restore(ctx context.Context) entity.Envelope[*entity.User]

	// Login exchanges credentials for a token, persists it, then performs
	// the self-lookup that confirms the identity.
	Login(ctx context.Context, input LoginInput) entity.Envelope[*entity.User]

	// Register creates the account and then authenticates as it.
	Register(ctx context.Context, input RegisterInput) entity.Envelope[*entity.User]

	// Logout destroys the token and identity together.
	Logout(ctx context.Context) entity.Envelope[struct{}]

	// CurrentUser returns the cached identity of the authenticated session.
	CurrentUser(ctx context.Context) entity.Envelope[*entity.User]

	// State reports the current lifecycle state.
	State() State

	// IsAuthenticated reports whether a confirmed identity is held.
	IsAuthenticated() bool

	// Close disposes the in-memory session. The durable token is left
	// intact so the next process can Restore it.
	Close(ctx context.Context) error
}
