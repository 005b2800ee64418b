// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"cinvoluntario/internal/domain/entity"
	domainerrors "cinvoluntario/internal/domain/errors"
	"cinvoluntario/internal/domain/service"
	"cinvoluntario/internal/errors"
	"cinvoluntario/internal/usecase"
)

// logoutNotifyTimeout bounds the best-effort backend notification so a dead
// backend cannot stall logout.
const logoutNotifyTimeout = 3 * time.Second

// sessionService implements the SessionUsecase interface. It is the single
// writer of the token store; the REST client and backends only read it.
type sessionService struct {
	backend  service.AuthBackend
	tokens   service.TokenStore
	validate *validator.Validate
	logger   *slog.Logger

	mu       sync.Mutex
	state    usecase.State
	identity *entity.User
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	backend service.AuthBackend,
	tokens service.TokenStore,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		backend:  backend,
		tokens:   tokens,
		validate: validator.New(),
		logger:   logger,
		state:    usecase.StateLoading,
	}
}

// Restore resolves a previously stored token into an identity. Outcomes:
// no token or a confirmed-invalid token end Unauthenticated (the stale
// token is cleared); an unreachable backend also ends Unauthenticated but
// keeps the stored token for the next attempt.
func (srv *sessionService) Restore(ctx context.Context) entity.Envelope[*entity.User] {
	srv.logger.Debug("restoring session")

	token, err := srv.tokens.Load(ctx)
	if err != nil || token == "" {
		srv.setUnauthenticated()

		return entity.Ok[*entity.User](nil)
	}

	user, err := srv.backend.FetchSelf(ctx)
	if err != nil {
		srv.setUnauthenticated()
		if errors.Is(err, domainerrors.ErrConnection) {
			srv.logger.Warn("session restore could not reach backend", slog.Any("error", err))

			return fail[*entity.User](err)
		}
		// Confirmed invalid: destroy the stale token, no retry.
		if clearErr := srv.tokens.Clear(ctx); clearErr != nil {
			srv.logger.Error("failed to clear stale token", slog.Any("error", clearErr))
		}
		srv.logger.Info("stored token rejected by backend, session cleared")

		return entity.Ok[*entity.User](nil)
	}

	srv.setAuthenticated(user)
	srv.logger.Info("session restored", slog.String("username", user.Username), slog.Any("role", user.Role))

	return entity.Ok(user)
}

// Login exchanges credentials for a token, persists it, then confirms the
// identity with a self-lookup. No partial token survives a failed lookup.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) entity.Envelope[*entity.User] {
	if err := srv.validate.Struct(input); err != nil {
		return entity.Fail[*entity.User](domainerrors.ErrValidationFailed.Message())
	}

	token, err := srv.backend.Authenticate(ctx, entity.Credential{
		Identifier: input.Identifier,
		Secret:     input.Secret,
	})
	if err != nil {
		srv.logger.Info("login rejected", slog.Any("error", err))
		srv.setUnauthenticated()

		return fail[*entity.User](err)
	}

	if err := srv.tokens.Save(ctx, token.AccessToken); err != nil {
		srv.logger.Error("failed to persist token", slog.Any("error", err))
		srv.setUnauthenticated()

		return entity.Fail[*entity.User](domainerrors.ErrInternalError.Message())
	}

	user, err := srv.backend.FetchSelf(ctx)
	if err != nil {
		// Identity and token live and die together; roll the token back.
		if clearErr := srv.tokens.Clear(ctx); clearErr != nil {
			srv.logger.Error("failed to clear token after lookup failure", slog.Any("error", clearErr))
		}
		srv.setUnauthenticated()

		return fail[*entity.User](err)
	}

	srv.setAuthenticated(user)
	srv.logger.Info("login succeeded", slog.String("username", user.Username))

	return entity.Ok(user)
}

// Register creates the account and authenticates as it in one flow.
func (srv *sessionService) Register(ctx context.Context, input usecase.RegisterInput) entity.Envelope[*entity.User] {
	if err := srv.validate.Struct(input); err != nil {
		return entity.Fail[*entity.User](domainerrors.ErrValidationFailed.Message())
	}

	role := entity.NormalizeRole(input.Role)
	if !role.IsValid() {
		return entity.Fail[*entity.User](domainerrors.ErrValidationFailed.Message())
	}

	created, err := srv.backend.CreateAccount(ctx, service.RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Role:     role,
		Name:     input.Name,
	})
	if err != nil {
		srv.logger.Info("registration rejected", slog.Any("error", err))

		return fail[*entity.User](err)
	}
	srv.logger.Info("account created", slog.String("username", created.Username), slog.Any("role", created.Role))

	return srv.Login(ctx, usecase.LoginInput{Identifier: input.Username, Secret: input.Password})
}

// Logout clears token and identity unconditionally, then notifies the
// backend with its own deadline. Idempotent: a second call is a no-op.
func (srv *sessionService) Logout(ctx context.Context) entity.Envelope[struct{}] {
	token, _ := srv.tokens.Load(ctx)

	srv.mu.Lock()
	wasAuthenticated := srv.state == usecase.StateAuthenticated
	srv.state = usecase.StateUnauthenticated
	srv.identity = nil
	srv.mu.Unlock()

	if err := srv.tokens.Clear(ctx); err != nil {
		srv.logger.Error("failed to clear token on logout", slog.Any("error", err))
	}

	if !wasAuthenticated && token == "" {
		return entity.Ok(struct{}{})
	}

	if token != "" {
		// Local state is already gone; the backend result cannot change it.
		notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), logoutNotifyTimeout)
		defer cancel()
		if err := srv.backend.Invalidate(notifyCtx, token); err != nil {
			srv.logger.Debug("logout notification failed", slog.Any("error", err))
		}
	}

	srv.logger.Info("logged out")

	return entity.Ok(struct{}{})
}

// CurrentUser returns the identity cached at login/restore time.
func (srv *sessionService) CurrentUser(ctx context.Context) entity.Envelope[*entity.User] {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.state != usecase.StateAuthenticated || srv.identity == nil {
		return entity.Fail[*entity.User](domainerrors.ErrNotAuthenticated.Message())
	}

	user := *srv.identity

	return entity.Ok(&user)
}

// State reports the current lifecycle state.
func (srv *sessionService) State() usecase.State {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state
}

// IsAuthenticated reports whether a confirmed identity is held.
func (srv *sessionService) IsAuthenticated() bool {
	return srv.State() == usecase.StateAuthenticated
}

// Close drops the in-memory session. The durable token stays so the next
// process restores the same session.
func (srv *sessionService) Close(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.identity = nil
	srv.state = usecase.StateLoading

	return nil
}

func (srv *sessionService) setAuthenticated(user *entity.User) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.state = usecase.StateAuthenticated
	srv.identity = user
}

func (srv *sessionService) setUnauthenticated() {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.state = usecase.StateUnauthenticated
	srv.identity = nil
}

// fail converts a domain error into a failed envelope carrying the
// user-facing message and, when known, the HTTP status.
func fail[T any](err error) entity.Envelope[T] {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return entity.FailStatus[T](appErr.Message(), appErr.HTTPCode())
	}

	return entity.Fail[T](domainerrors.ErrInternalError.Message())
}
