// Package api defines the application-facing interfaces of the auth core.
package api

import (
	"context"

	"supplyhub/internal/auth/domain/services"
)

// AuthUseCase orchestrates registration, login and token refresh.
type AuthUseCase interface {
	Register(ctx context.Context, email, name, password string) (*services.Session, error)

	Login(ctx context.Context, email, password string) (*services.Session, error)

	// RefreshTokens verifies a refresh token and mints a fresh pair. The
	// presented token stays valid until its own expiry; refreshing twice
	// with the same token is allowed and yields independent pairs.
	RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}
