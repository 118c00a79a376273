package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	appErrors "github.com/noah-isme/pickup-api/pkg/errors"
)

// AuthService verifies the shared admin secret. The "logged in" flag lives
// client-side; this gate is a capability check, not a security boundary.
type AuthService struct {
	password string
	logger   *zap.Logger
}

// NewAuthService constructs the auth service.
func NewAuthService(password string, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{password: password, logger: logger}
}

// VerifyPassword checks the supplied password against the configured
// secret. The secret may be a bcrypt hash; plain values use a
// constant-time compare.
func (s *AuthService) VerifyPassword(ctx context.Context, password string) error {
	if password == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Missing password")
	}

	if isBcryptHash(s.password) {
		if err := bcrypt.CompareHashAndPassword([]byte(s.password), []byte(password)); err != nil {
			return appErrors.Clone(appErrors.ErrUnauthorized, "Invalid password")
		}
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) != 1 {
		return appErrors.Clone(appErrors.ErrUnauthorized, "Invalid password")
	}
	return nil
}

func isBcryptHash(value string) bool {
	return strings.HasPrefix(value, "$2a$") || strings.HasPrefix(value, "$2b$") || strings.HasPrefix(value, "$2y$")
}
