// Package services contains the concrete token and password services.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"supplyhub/internal/auth/domain/services"
	svc "supplyhub/internal/auth/ports/services"
	"supplyhub/pkg/logger"
)

// Log and error messages.
const (
	methodIssuePair = "IssuePair"
	methodVerify    = "Verify"

	msgIssuingPair    = "issuing token pair"
	msgPairIssued     = "token pair issued"
	msgVerifyingToken = "verifying token"
	msgTokenVerified  = "token verified"
	msgTokenExpired   = "token has expired"
	msgInvalidToken   = "invalid token"
	msgWrongTokenType = "token class tag does not match expected type"

	//nolint:gosec
	errSigningToken = "error signing token"

	errCtxSigningToken   = "signing token"
	errCtxParsingToken   = "parsing token"
	errCtxVerifyingToken = "verifying token"
)

// ErrInvalidAlgorithm is returned when a token was signed with an
// unexpected algorithm.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims adapts the domain claims to the JWT library representation.
type Claims struct {
	Email string `json:"email"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// ServiceJWT implements the TokenService port with HS256 signed tokens.
type ServiceJWT struct {
	config services.TokenConfig
}

// NewJWT creates a new JWT token service. The secret must already have
// been validated at startup; an empty secret here is a programming error
// and every signing call will fail.
func NewJWT(secretKey string, accessTokenTTL, refreshTokenTTL time.Duration) svc.TokenService {
	return &ServiceJWT{
		config: services.TokenConfig{
			SecretKey:       []byte(secretKey),
			AccessTokenTTL:  accessTokenTTL,
			RefreshTokenTTL: refreshTokenTTL,
		},
	}
}

func domainToJWTClaims(claims services.TokenClaims) Claims {
	return Claims{
		Email: claims.Email,
		Type:  string(claims.Type),
		RegisteredClaims: jwt.RegisteredClaims{
			// jti makes every token unique; pairs minted within the same
			// second must still differ.
			ID:        uuid.NewString(),
			Subject:   claims.Email,
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	}
}

func jwtToDomainClaims(claims *Claims) *services.TokenClaims {
	var issuedAt, expiresAt time.Time
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &services.TokenClaims{
		Email:     claims.Email,
		Type:      services.TokenType(claims.Type),
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}
}

// sign embeds the claims and signs them with the shared secret.
func (s *ServiceJWT) sign(claims services.TokenClaims) (string, error) {
	if len(s.config.SecretKey) == 0 {
		return "", fmt.Errorf("%s: %w: empty secret key", errCtxSigningToken, services.ErrGeneratingToken)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, domainToJWTClaims(claims))

	tokenString, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", errCtxSigningToken, services.ErrGeneratingToken, err)
	}
	return tokenString, nil
}

// IssuePair mints an access/refresh pair for the subject email. A single
// issuance instant is used for both tokens so their relative expiries
// stay comparable.
func (s *ServiceJWT) IssuePair(ctx context.Context, email string) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodIssuePair),
		zap.String("email", email),
	)
	log.Debug(ctx, msgIssuingPair)

	now := time.Now()
	accessExpires := now.Add(s.config.AccessTokenTTL)
	refreshExpires := now.Add(s.config.RefreshTokenTTL)

	accessToken, err := s.sign(services.TokenClaims{
		Email:     email,
		Type:      services.TokenTypeAccess,
		IssuedAt:  now,
		ExpiresAt: accessExpires,
	})
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.sign(services.TokenClaims{
		Email:     email,
		Type:      services.TokenTypeRefresh,
		IssuedAt:  now,
		ExpiresAt: refreshExpires,
	})
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return nil, err
	}

	log.Debug(ctx, msgPairIssued,
		zap.Time("accessExpiresAt", accessExpires),
		zap.Time("refreshExpiresAt", refreshExpires))

	return &services.TokenPair{
		AccessToken:  services.TokenInfo{Token: accessToken, ExpiresIn: accessExpires},
		RefreshToken: services.TokenInfo{Token: refreshToken, ExpiresIn: refreshExpires},
	}, nil
}

// Verify checks signature integrity, expiry and the token class tag.
func (s *ServiceJWT) Verify(ctx context.Context, tokenString string, expected services.TokenType) (*services.TokenClaims, error) {
	log := logger.Log(ctx).With(zap.String("method", methodVerify))
	log.Debug(ctx, msgVerifyingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return nil, fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrExpiredToken)
		}
		log.Debug(ctx, msgInvalidToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxParsingToken, services.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrInvalidToken)
	}

	if claims.Email == "" {
		log.Debug(ctx, "email claim is empty")
		return nil, fmt.Errorf("%s: %w: empty email", errCtxVerifyingToken, services.ErrInvalidToken)
	}

	// The class tag is checked explicitly. Presenting an access token to
	// the refresh flow, or a refresh token to the access gate, is treated
	// exactly like a forged token.
	if services.TokenType(claims.Type) != expected {
		log.Debug(ctx, msgWrongTokenType,
			zap.String("expected", string(expected)),
			zap.String("actual", claims.Type))
		return nil, fmt.Errorf("%s: %w: unexpected token type", errCtxVerifyingToken, services.ErrInvalidToken)
	}

	log.Debug(ctx, msgTokenVerified, zap.String("email", claims.Email))
	return jwtToDomainClaims(claims), nil
}
