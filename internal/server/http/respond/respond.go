// Package respond renders the uniform response envelope.
package respond

import (
	"github.com/gofiber/fiber/v3"
)

// Client-facing messages. Security-sensitive paths deliberately collapse
// distinct internal causes into one coarse message each.
const (
	MsgInvalidCredentials    = "Senha ou e-mail incorretos."
	MsgMissingLoginData      = "Envie todos dados de acesso."
	MsgMissingRefreshToken   = "Por favor envie o refreshToken."
	MsgEmailAlreadyExists    = "E-mail já cadastrado."
	MsgInvalidOrExpiredToken = "Invalid or expired token"
	MsgTokenNotProvided      = "Token not provided"
	MsgRecordNotFound        = "Registro não encontrado."
	MsgRouteNotFound         = "Rota não encontrada."
	MsgGenericError          = "Ocorreu um erro."
)

// Envelope is the wire shape of every response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// Success writes a success envelope with the given payload.
func Success(ctx fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(Envelope{Success: true, Data: data}) //nolint:wrapcheck
}

// Fail writes a failure envelope. The payload is either a message string
// or a field-error list.
func Fail(ctx fiber.Ctx, status int, errPayload interface{}) error {
	return ctx.Status(status).JSON(Envelope{Success: false, Error: errPayload}) //nolint:wrapcheck
}
