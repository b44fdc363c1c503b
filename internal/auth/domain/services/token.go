// Package services contains the domain types and errors of the session core.
package services

import (
	"errors"
	"time"
)

// Token verification outcomes. Expired and invalid are distinct internally
// even though both collapse to the same client-facing message.
var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrExpiredToken    = errors.New("token has expired")
	ErrGeneratingToken = errors.New("failed to generate token")
)

// TokenType tags the class of a signed token. The tag is always checked
// explicitly against the consuming operation; a refresh token is never
// accepted where an access token is required, regardless of lifetimes.
type TokenType string

// Token classes.
const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// TokenConfig holds the signing settings of the token service.
type TokenConfig struct {
	SecretKey       []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// TokenClaims is the payload embedded in a signed token.
type TokenClaims struct {
	Email     string
	Type      TokenType
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenInfo bundles an issued token string with its expiry instant.
type TokenInfo struct {
	Token     string    `json:"token"`
	ExpiresIn time.Time `json:"expiresIn"`
}

// TokenPair is the access/refresh pair issued at login, register and
// refresh time. Both tokens share the same issued-at instant.
type TokenPair struct {
	AccessToken  TokenInfo `json:"accessToken"`
	RefreshToken TokenInfo `json:"refreshToken"`
}
