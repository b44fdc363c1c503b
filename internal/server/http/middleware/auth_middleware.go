// Package middleware contains the HTTP middleware chain.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"supplyhub/internal/auth/domain/services"
	"supplyhub/internal/auth/ports/repositories"
	svc "supplyhub/internal/auth/ports/services"
	"supplyhub/internal/server/http/respond"
	"supplyhub/pkg/logger"
)

// PrincipalKey is the fiber.Locals key holding the authenticated
// principal (*entities.UserView) for the current request.
const PrincipalKey = "principal"

const (
	logAuthMiddleware = "auth middleware"

	msgNoAuthHeader  = "no authorization header provided"
	msgBadHeaderForm = "authorization header is not a bearer token"
	msgTokenRejected = "access token rejected"
	msgSubjectGone   = "token subject no longer exists"
)

// NewAuthMiddleware creates the access gate. Every failure mode stops the
// request with 401; the gate never fails open.
func NewAuthMiddleware(tokenSvc svc.TokenService, users repositories.UserRepository) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, logAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, msgNoAuthHeader)
			return respond.Fail(ctx, http.StatusUnauthorized, respond.MsgTokenNotProvided)
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			log.Debug(requestCtx, msgBadHeaderForm)
			return respond.Fail(ctx, http.StatusUnauthorized, respond.MsgInvalidOrExpiredToken)
		}

		claims, err := tokenSvc.Verify(requestCtx, token, services.TokenTypeAccess)
		if err != nil {
			log.Debug(requestCtx, msgTokenRejected, zap.Error(err))
			return respond.Fail(ctx, http.StatusUnauthorized, respond.MsgInvalidOrExpiredToken)
		}

		user, err := users.FindByEmail(requestCtx, claims.Email)
		if err != nil {
			// Account deleted after issuance, or the directory failed.
			// Either way the request does not proceed.
			log.Debug(requestCtx, msgSubjectGone, zap.Error(err))
			return respond.Fail(ctx, http.StatusUnauthorized, respond.MsgInvalidOrExpiredToken)
		}

		ctx.Locals(PrincipalKey, user.View())

		return ctx.Next()
	}
}
