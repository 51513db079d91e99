// Package auth issues and verifies the signed access tokens used by the
// HTTP API. Tokens are HS256 JWTs carrying the username as subject.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"personal-assistant/internal/errors"
)

// TokenService signs and verifies access tokens.
type TokenService struct {
	secretKey   []byte
	tokenExpiry time.Duration
	now         func() time.Time
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secretKey string, tokenExpiry time.Duration) *TokenService {
	return &TokenService{
		secretKey:   []byte(secretKey),
		tokenExpiry: tokenExpiry,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// IssueToken returns a signed access token for the given username.
func (t *TokenService) IssueToken(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", errors.NewValidationError("username is required", nil)
	}

	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.tokenExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secretKey)
	if err != nil {
		return "", errors.NewInternalError("sign access token", err)
	}
	return signed, nil
}

// VerifyToken validates a token and returns the username it was issued to.
func (t *TokenService) VerifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secretKey, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil || !token.Valid {
		return "", errors.NewUnauthorizedError("could not validate credentials", err)
	}
	if claims.Subject == "" {
		return "", errors.NewUnauthorizedError("could not validate credentials", nil)
	}
	return claims.Subject, nil
}
