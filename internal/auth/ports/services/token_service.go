// Package services defines the service ports of the session core.
package services

import (
	"context"

	"supplyhub/internal/auth/domain/services"
)

// TokenService signs and verifies session tokens and issues token pairs.
type TokenService interface {
	// IssuePair mints an access/refresh pair for the subject email. Both
	// tokens carry the same issued-at instant.
	IssuePair(ctx context.Context, email string) (*services.TokenPair, error)

	// Verify checks signature, expiry and the token class tag. It returns
	// services.ErrExpiredToken for a well-signed but stale token and
	// services.ErrInvalidToken for anything else that is not acceptable,
	// including a class tag mismatch.
	Verify(ctx context.Context, token string, expected services.TokenType) (*services.TokenClaims, error)
}
