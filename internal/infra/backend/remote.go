// Package backend provides the two AuthBackend strategies: the remote HTTP
// backend and the local seeded table used for offline development.
package backend

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"cinvoluntario/internal/domain/entity"
	domainerrors "cinvoluntario/internal/domain/errors"
	"cinvoluntario/internal/domain/service"
	"cinvoluntario/internal/errors"
	"cinvoluntario/internal/infra/rest"
)

// remoteBackend authenticates against the real HTTP API through the typed
// REST client.
type remoteBackend struct {
	client *rest.Client
	logger *slog.Logger
}

// NewRemoteBackend is the constructor for remoteBackend.
func NewRemoteBackend(client *rest.Client, logger *slog.Logger) service.AuthBackend {
	return &remoteBackend{client: client, logger: logger}
}

// Authenticate exchanges credentials for a token via POST /auth/token.
// The endpoint speaks the OAuth2 password flow, so the identifier travels
// in the form's username field whatever the user actually typed.
func (b *remoteBackend) Authenticate(ctx context.Context, cred entity.Credential) (entity.Token, error) {
	form := url.Values{}
	form.Set("username", cred.Identifier)
	form.Set("password", cred.Secret)

	env := rest.PostForm[entity.Token](ctx, b.client, "/auth/token", form)
	if !env.Success {
		return entity.Token{}, mapAuthFailure(env.Status, env.Error)
	}
	if env.Data.AccessToken == "" {
		return entity.Token{}, errors.Wrap(domainerrors.ErrBackendFault, "token response missing access_token")
	}

	return env.Data, nil
}

// CreateAccount registers a new user via POST /users/.
func (b *remoteBackend) CreateAccount(ctx context.Context, input service.RegisterInput) (*entity.User, error) {
	payload := map[string]string{
		"username": input.Username,
		"email":    input.Email,
		"password": input.Password,
		"role":     input.Role.String(),
	}

	env := rest.Post[entity.User](ctx, b.client, "/users/", payload)
	if !env.Success {
		switch env.Status {
		case 0:
			return nil, errors.Wrap(domainerrors.ErrConnection, env.Error)
		case http.StatusConflict:
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, env.Error)
		case http.StatusBadRequest, http.StatusUnprocessableEntity:
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, env.Error)
		default:
			return nil, errors.Wrap(domainerrors.ErrBackendFault, env.Error)
		}
	}

	user := env.Data

	return &user, nil
}

// FetchSelf resolves the stored token into an identity via GET /users/me.
func (b *remoteBackend) FetchSelf(ctx context.Context) (*entity.User, error) {
	env := rest.Get[entity.User](ctx, b.client, "/users/me")
	if !env.Success {
		if env.Status == http.StatusUnauthorized {
			return nil, errors.Wrap(domainerrors.ErrSessionExpired, env.Error)
		}
		if env.Status == 0 {
			return nil, errors.Wrap(domainerrors.ErrConnection, env.Error)
		}

		return nil, errors.Wrap(domainerrors.ErrBackendFault, env.Error)
	}

	user := env.Data

	return &user, nil
}

// Invalidate notifies the backend that the token is retired. Best effort;
// the session is already gone locally when this runs.
func (b *remoteBackend) Invalidate(ctx context.Context, token string) error {
	env := rest.Post[struct{}](rest.WithToken(ctx, token), b.client, "/auth/logout", nil)
	if !env.Success {
		b.logger.Debug("logout notify failed", slog.Int("status", env.Status), slog.String("error", env.Error))

		return errors.New(env.Error)
	}

	return nil
}

// mapAuthFailure turns a token-endpoint failure into a domain error.
func mapAuthFailure(status int, msg string) error {
	switch status {
	case 0:
		return errors.Wrap(domainerrors.ErrConnection, msg)
	case http.StatusUnauthorized, http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errors.Wrap(domainerrors.ErrInvalidCredentials, msg)
	default:
		return errors.Wrap(domainerrors.ErrBackendFault, msg)
	}
}
