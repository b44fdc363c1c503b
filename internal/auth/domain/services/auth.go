package services

import (
	"errors"

	"supplyhub/internal/auth/domain/entities"
)

// Authentication domain errors.
var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEmailAlreadyExists    = errors.New("user with this email already exists")
	ErrMissingRefreshToken   = errors.New("refresh token was not provided")
	ErrTokenGenerationFailed = errors.New("failed to generate authentication tokens")
)

// Session is the result of a successful register or login: the
// password-stripped user view plus a freshly issued token pair.
type Session struct {
	User   *entities.UserView `json:"user"`
	Tokens *TokenPair         `json:"tokens"`
}
