package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/senandung-senja/kasir/config"
	"github.com/senandung-senja/kasir/middlewares"
	"github.com/senandung-senja/kasir/models"
)

// GenerateSessionToken mints the gateway's own HS256 session token wrapping
// the backend-issued bearer token. The session ID keys the in-memory cart.
func GenerateSessionToken(name string, role models.Role, backendToken string) (string, uuid.UUID, error) {
	now := time.Now()
	sessionID := uuid.New()

	claims := &middlewares.Claims{
		SessionID:    sessionID,
		Name:         name,
		Role:         role,
		BackendToken: backendToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   name,
			ExpiresAt: jwt.NewNumericDate(now.Add(config.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := tokenObj.SignedString([]byte(config.SecretKey))
	if err != nil {
		return "", uuid.Nil, err
	}

	return token, sessionID, nil
}

// ParseSessionToken is the inverse of GenerateSessionToken, used by tests
// and by callers outside the request path (the middleware parses inline).
func ParseSessionToken(tokenStr string) (*middlewares.Claims, error) {
	claims := &middlewares.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
