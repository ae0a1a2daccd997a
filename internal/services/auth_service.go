package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/guillaumevincent/monpatrimoine/internal/errors"
	"github.com/guillaumevincent/monpatrimoine/internal/middleware"
)

// authService checks the owner password and issues access tokens.
type authService struct {
	passwordHash string
	expiration   time.Duration
}

// NewAuthService creates a new AuthServicer for the bcrypt hash of the owner
// password. An empty hash means authentication is not configured.
func NewAuthService(passwordHash string, expiration time.Duration) AuthServicer {
	return &authService{passwordHash: passwordHash, expiration: expiration}
}

// Login verifies password and returns a signed access token.
func (s *authService) Login(password string) (string, time.Time, error) {
	if s.passwordHash == "" {
		return "", time.Time{}, apperrors.ErrAuthNotConfigured
	}
	if password == "" {
		return "", time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "password is required")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", time.Time{}, apperrors.ErrInvalidCredentials
	}

	token, err := middleware.GenerateAccessToken(middleware.OwnerSubject)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return token, time.Now().Add(s.expiration), nil
}

// HashPassword returns the bcrypt hash to store in OWNER_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return string(hash), nil
}
