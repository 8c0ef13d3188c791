// Package auth implements the stateless JWT token service. Tokens are
// HS256-signed and carry the user id, email and role; there is no
// server-side revocation list, so logout is a client-side token discard.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mindreboot/mindreboot-api/internal/core/domain"
	"github.com/mindreboot/mindreboot-api/internal/core/ports"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// TokenService issues and verifies signed identity tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService. A non-positive ttl falls back to
// the 7-day default.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token encoding the user's id, email and role.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and extracts the identity claims.
// Every failure collapses to domain.ErrInvalidToken so callers cannot
// distinguish tampering from expiry.
func (s *TokenService) Verify(tokenString string) (*ports.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	roleStr, _ := claims["role"].(string)
	role := domain.Role(roleStr)
	if userID == "" || !role.Valid() {
		return nil, domain.ErrInvalidToken
	}

	return &ports.Identity{UserID: userID, Email: email, Role: role}, nil
}
