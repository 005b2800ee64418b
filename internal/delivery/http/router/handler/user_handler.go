package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"cinvoluntario/internal/delivery/http/middleware"
	"cinvoluntario/internal/delivery/http/response"
	"cinvoluntario/internal/domain/entity"
	"cinvoluntario/internal/domain/service"
)

// createUserInput is the account-creation payload.
type createUserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// UserHandler serves the account endpoints.
type UserHandler struct {
	registry *Registry
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(registry *Registry, hasher service.PasswordHasher, logger *slog.Logger) *UserHandler {
	return &UserHandler{registry: registry, hasher: hasher, logger: logger}
}

// Me returns the identity behind the bearer token.
func (h *UserHandler) Me(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return response.Unauthorized(c, "Não autenticado")
	}

	user, found := h.registry.UserByID(claims.UserID)
	if !found {
		return response.Unauthorized(c, "Conta não existe mais")
	}

	return response.JSON(c, http.StatusOK, user)
}

// List returns all accounts.
func (h *UserHandler) List(c echo.Context) error {
	return response.JSON(c, http.StatusOK, h.registry.Users())
}

// Create registers a new account.
func (h *UserHandler) Create(c echo.Context) error {
	var input createUserInput
	if err := c.Bind(&input); err != nil {
		return response.UnprocessableEntity(c, "Corpo da requisição inválido")
	}
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return response.UnprocessableEntity(c, "Campos username, email e password são obrigatórios")
	}

	role := entity.NormalizeRole(input.Role)
	if !role.IsValid() {
		return response.UnprocessableEntity(c, "Papel desconhecido: "+input.Role)
	}

	hash, err := h.hasher.Hash(input.Password)
	if err != nil {
		h.logger.Error("failed to hash password", slog.Any("error", err))

		return response.InternalServerError(c, "Erro interno do servidor")
	}

	name := input.Name
	if name == "" {
		name = input.Username
	}
	user, created := h.registry.CreateUser(entity.User{
		Username: input.Username,
		Email:    input.Email,
		Role:     role,
		Name:     name,
	}, hash)
	if !created {
		return response.Conflict(c, "Usuário já cadastrado")
	}

	h.logger.Info("account created", slog.String("username", user.Username), slog.Any("role", user.Role))

	return response.JSON(c, http.StatusCreated, user)
}
