package config

import (
	"errors"
	"time"
)

// ErrEmptySecretKey is returned when no signing secret is configured.
// Token signing cannot work without it, so startup must halt.
var ErrEmptySecretKey = errors.New("JWT secret key is not configured")

// JWTConfig holds the token signing settings.
type JWTConfig struct {
	SecretKey       string `yaml:"secret_key" env:"SUPPLYHUB_JWT_SECRET_KEY"`
	AccessTokenTTL  string `yaml:"access_token_ttl" env:"SUPPLYHUB_JWT_ACCESS_TOKEN_TTL" env-default:"2h"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl" env:"SUPPLYHUB_JWT_REFRESH_TOKEN_TTL" env-default:"48h"`
	BCryptCost      int    `yaml:"bcrypt_cost" env:"SUPPLYHUB_BCRYPT_COST" env-default:"10"`
}

// Validate checks that the secret key is present.
func (c *JWTConfig) Validate() error {
	if c.SecretKey == "" {
		return ErrEmptySecretKey
	}
	return nil
}

// GetAccessTokenTTL returns the access token lifetime.
func (c *JWTConfig) GetAccessTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.AccessTokenTTL)
	if err != nil {
		return 2 * time.Hour
	}
	return duration
}

// GetRefreshTokenTTL returns the refresh token lifetime.
func (c *JWTConfig) GetRefreshTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.RefreshTokenTTL)
	if err != nil {
		return 48 * time.Hour
	}
	return duration
}
