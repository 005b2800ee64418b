package service

import (
	"github.com/golang-jwt/jwt/v5"

	"cinvoluntario/internal/domain/entity"
)

// Claims defines the custom claims carried by dev-mode tokens.
type Claims struct {
	UserID   int64       `json:"uid"`
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the signed tokens used by the local
// auth backend and verified by the stub server. The remote backend never
// touches this; its tokens are opaque strings.
type TokenService interface {
	// IssueToken creates a signed token for the given identity.
	IssueToken(user *entity.User) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
