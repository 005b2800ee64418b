// Package middleware contains echo middleware for the stub backend.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cinvoluntario/internal/delivery/http/response"
	"cinvoluntario/internal/domain/service"
)

// claimsContextKey is where Authenticate stores the validated token claims.
const claimsContextKey = "tokenClaims"

// AuthMiddleware validates bearer tokens on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Authorization header and stores the claims on
// the request context for handlers to read.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Não autenticado")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Esquema de autenticação inválido")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Token inválido ou expirado")
		}

		c.Set(claimsContextKey, claims)

		return next(c)
	}
}

// ClaimsFrom reads the claims Authenticate stored on the context. The second
// return is false on routes that skipped the middleware.
func ClaimsFrom(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*service.Claims)

	return claims, ok
}

// RequireRole restricts a route to users carrying the given role. It must
// run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok || claims.Role.String() != requiredRole {
				return response.Detail(c, http.StatusForbidden, "Permissão negada")
			}

			return next(c)
		}
	}
}
