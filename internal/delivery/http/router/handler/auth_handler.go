package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"cinvoluntario/internal/delivery/http/response"
	"cinvoluntario/internal/domain/entity"
	"cinvoluntario/internal/domain/service"
)

// AuthHandler serves the token endpoints.
type AuthHandler struct {
	registry *Registry
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(
	registry *Registry,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		registry: registry,
		hasher:   hasher,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Token exchanges form-encoded credentials for a bearer token. The form
// field is named "username" but accepts an email as well.
func (h *AuthHandler) Token(c echo.Context) error {
	identifier := c.FormValue("username")
	password := c.FormValue("password")
	if identifier == "" || password == "" {
		return response.UnprocessableEntity(c, "Campos username e password são obrigatórios")
	}

	user, hash, found := h.registry.LookupCredential(identifier)
	if !found || !h.hasher.Check(password, hash) {
		h.logger.Info("token request rejected", slog.String("identifier", identifier))

		return response.Unauthorized(c, "Credenciais inválidas")
	}

	signed, err := h.tokenSvc.IssueToken(user)
	if err != nil {
		h.logger.Error("failed to issue token", slog.Any("error", err))

		return response.InternalServerError(c, "Erro interno do servidor")
	}

	return response.JSON(c, http.StatusOK, entity.Token{
		AccessToken: signed,
		TokenType:   "bearer",
	})
}

// Logout acknowledges a session-invalidation notice. Tokens are stateless,
// so there is nothing to revoke server-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
