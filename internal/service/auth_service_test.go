package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthServiceVerifyPasswordMissing(t *testing.T) {
	svc := NewAuthService("secret", nil)

	err := svc.VerifyPassword(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestAuthServiceVerifyPasswordWrong(t *testing.T) {
	svc := NewAuthService("secret", nil)

	err := svc.VerifyPassword(context.Background(), "guess")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestAuthServiceVerifyPasswordPlainMatch(t *testing.T) {
	svc := NewAuthService("secret", nil)

	assert.NoError(t, svc.VerifyPassword(context.Background(), "secret"))
}

func TestAuthServiceVerifyPasswordBcryptSecret(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewAuthService(string(hash), nil)

	assert.NoError(t, svc.VerifyPassword(context.Background(), "secret"))

	err = svc.VerifyPassword(context.Background(), "guess")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}
