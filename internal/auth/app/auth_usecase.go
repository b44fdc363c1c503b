// Package app contains the application services of the auth core.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"supplyhub/internal/auth/domain/entities"
	"supplyhub/internal/auth/domain/services"
	"supplyhub/internal/auth/ports/api"
	"supplyhub/internal/auth/ports/repositories"
	svc "supplyhub/internal/auth/ports/services"
	"supplyhub/pkg/logger"
)

const (
	methodRegister      = "Register"
	methodLogin         = "Login"
	methodRefreshTokens = "RefreshTokens"

	msgStartRegistration  = "starting user registration"
	msgEmailExists        = "user with this email already exists"
	msgUserRegistered     = "user registered successfully"
	msgLoginAttempt       = "login attempt"
	msgLoginNonExistent   = "login attempt with non-existent email"
	msgInvalidPassword    = "invalid password provided"
	msgUserLoggedIn       = "user logged in successfully"
	msgRefreshingTokens   = "refreshing tokens"
	msgMissingRefresh     = "refresh token missing from request"
	msgRefreshSubjectGone = "refresh token subject no longer exists"
	msgTokensRefreshed    = "tokens refreshed successfully"

	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrGenerateTokens    = "failed to generate tokens"
	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"
	msgErrInvalidRefresh    = "refresh token rejected"

	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxGeneratingTokens   = "generating tokens"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxVerifyingRefresh   = "verifying refresh token"
	errCtxResolvingSubject   = "resolving refresh token subject"
)

// AuthUseCaseImpl implements the AuthUseCase interface.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase creates a new authentication service.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Register creates a new account and issues its first token pair. Input
// shape validation happens at the transport boundary; by the time this
// runs the fields are trimmed and well-formed.
func (a *AuthUseCaseImpl) Register(ctx context.Context, email, name, password string) (*services.Session, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", email))
	log.Debug(ctx, msgStartRegistration)

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	createdUser, err := a.userRepo.Create(ctx, &entities.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) {
			log.Debug(ctx, msgEmailExists)
			return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, services.ErrEmailAlreadyExists)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	tokens, err := a.tokenSvc.IssuePair(ctx, createdUser.Email)
	if err != nil {
		log.Error(ctx, msgErrGenerateTokens, zap.Error(err), zap.String("userID", createdUser.ID))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, services.ErrTokenGenerationFailed)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))

	return &services.Session{User: createdUser.View(), Tokens: tokens}, nil
}

// Login authenticates a user by email and password. A missing account and
// a wrong password produce the same ErrInvalidCredentials so the caller
// cannot tell which one happened.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*services.Session, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPassword, zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	tokens, err := a.tokenSvc.IssuePair(ctx, user.Email)
	if err != nil {
		log.Error(ctx, msgErrGenerateTokens, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, services.ErrTokenGenerationFailed)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))

	return &services.Session{User: user.View(), Tokens: tokens}, nil
}

// RefreshTokens verifies a presented refresh token, re-resolves its
// subject and mints a fresh pair. An account deleted after issuance is
// reported as an invalid token, never as "not found".
func (a *AuthUseCaseImpl) RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRefreshTokens))
	log.Debug(ctx, msgRefreshingTokens)

	if refreshToken == "" {
		log.Debug(ctx, msgMissingRefresh)
		return nil, services.ErrMissingRefreshToken
	}

	claims, err := a.tokenSvc.Verify(ctx, refreshToken, services.TokenTypeRefresh)
	if err != nil {
		log.Debug(ctx, msgErrInvalidRefresh, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingRefresh, err)
	}

	log = log.With(zap.String("email", claims.Email))

	user, err := a.userRepo.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgRefreshSubjectGone)
			return nil, fmt.Errorf("%s: %w", errCtxResolvingSubject, services.ErrInvalidToken)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	tokens, err := a.tokenSvc.IssuePair(ctx, user.Email)
	if err != nil {
		log.Error(ctx, msgErrGenerateTokens, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, services.ErrTokenGenerationFailed)
	}

	log.Info(ctx, msgTokensRefreshed, zap.String("userID", user.ID))
	return tokens, nil
}
