// Package auth contains the HTTP handlers of the session core.
package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"supplyhub/internal/auth/domain/services"
	"supplyhub/internal/auth/ports/api"
	"supplyhub/internal/server/http/dto"
	"supplyhub/internal/server/http/respond"
	"supplyhub/internal/validation"
	"supplyhub/pkg/logger"
)

// Log messages.
const (
	LogHandlerRegister = "auth handler: register"
	LogHandlerLogin    = "auth handler: login"
	LogHandlerRefresh  = "auth handler: refresh tokens" // #nosec G101 - not a credential

	ErrorInvalidRequest       = "invalid request body"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler contains the HTTP handlers for registration, login and refresh.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler creates a new auth handler.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{authUseCase: authUseCase}
}

// Register handles account registration.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Fail(ctx, http.StatusBadRequest, respond.MsgGenericError)
	}

	valid, fieldErrs := validation.ValidateRegister(&req)
	if fieldErrs != nil {
		return respond.Fail(ctx, http.StatusBadRequest, fieldErrs)
	}

	session, err := h.authUseCase.Register(requestCtx, valid.Email, valid.Name, valid.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) {
			return respond.Fail(ctx, http.StatusBadRequest, respond.MsgEmailAlreadyExists)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Fail(ctx, http.StatusBadRequest, respond.MsgGenericError)
	}

	return respond.Success(ctx, http.StatusOK, session)
}

// Login handles authentication by email and password. A missing account
// and a wrong password produce byte-identical responses.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Fail(ctx, http.StatusBadRequest, respond.MsgGenericError)
	}

	if req.Email == "" || req.Password == "" {
		return respond.Fail(ctx, http.StatusBadRequest, respond.MsgMissingLoginData)
	}

	session, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return respond.Fail(ctx, http.StatusBadRequest, respond.MsgInvalidCredentials)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Fail(ctx, http.StatusBadRequest, respond.MsgGenericError)
	}

	return respond.Success(ctx, http.StatusOK, session)
}

// RefreshTokens re-issues a token pair from a still-valid refresh token.
// Expired, forged and wrong-class tokens are indistinguishable to the
// client; only a missing token gets its own message.
func (h *Handler) RefreshTokens(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRefresh)

	var req dto.RefreshRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Fail(ctx, http.StatusBadRequest, respond.MsgGenericError)
	}

	tokens, err := h.authUseCase.RefreshTokens(requestCtx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingRefreshToken):
			return respond.Fail(ctx, http.StatusBadRequest, respond.MsgMissingRefreshToken)
		case errors.Is(err, services.ErrExpiredToken), errors.Is(err, services.ErrInvalidToken):
			return respond.Fail(ctx, http.StatusBadRequest, respond.MsgInvalidOrExpiredToken)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Fail(ctx, http.StatusBadRequest, respond.MsgGenericError)
	}

	return respond.Success(ctx, http.StatusOK, tokens)
}
