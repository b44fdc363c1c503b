package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"supplyhub/internal/server/http/respond"
	"supplyhub/pkg/logger"
)

// NewRecoveryMiddleware creates middleware that converts panics into the
// generic failure envelope. The cause is logged server-side only; no
// stack detail ever reaches the client.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx)

		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()

				log.Error(requestCtx, "Server panic",
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(stack)),
				)

				if err := respond.Fail(ctx, http.StatusBadRequest, respond.MsgGenericError); err != nil {
					log.Error(requestCtx, "Failed to send error response after panic", zap.Error(err))
				}
			}
		}()

		return ctx.Next()
	}
}
