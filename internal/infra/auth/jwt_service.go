package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"cinvoluntario/config"
	"cinvoluntario/internal/domain/entity"
	"cinvoluntario/internal/domain/service"
	"cinvoluntario/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard. It backs the local auth mode only; remote tokens stay
// opaque to the client.
type jwtService struct {
	secret string        // Secret key for signing dev tokens.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth.Mode == config.AuthModeLocal && cfg.Auth.DevSecret == "" {
		return nil, errors.New("dev token secret must be provided in local mode")
	}

	return &jwtService{
		secret: cfg.Auth.DevSecret,
		ttl:    cfg.Auth.TokenTTL,
	}, nil
}

// IssueToken creates a signed token carrying the user's identity claims.
func (s *jwtService) IssueToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}
