package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-assistant/internal/errors"
)

func TestTokenService_RoundTrip(t *testing.T) {
	service := NewTokenService("test-secret", 30*time.Minute)

	token, err := service.IssueToken("alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	username, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestTokenService_IssueToken_RequiresUsername(t *testing.T) {
	service := NewTokenService("test-secret", 30*time.Minute)

	_, err := service.IssueToken("   ")

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestTokenService_VerifyToken_Expired(t *testing.T) {
	service := NewTokenService("test-secret", 30*time.Minute)

	issued := time.Now().UTC()
	service.now = func() time.Time { return issued }

	token, err := service.IssueToken("alice")
	require.NoError(t, err)

	service.now = func() time.Time { return issued.Add(31 * time.Minute) }

	_, err = service.VerifyToken(token)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUnauthorized))
}

func TestTokenService_VerifyToken_WrongSecret(t *testing.T) {
	issuer := NewTokenService("issuer-secret", 30*time.Minute)
	verifier := NewTokenService("other-secret", 30*time.Minute)

	token, err := issuer.IssueToken("alice")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUnauthorized))
}

func TestTokenService_VerifyToken_Garbage(t *testing.T) {
	service := NewTokenService("test-secret", 30*time.Minute)

	_, err := service.VerifyToken("not-a-token")

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUnauthorized))
}
