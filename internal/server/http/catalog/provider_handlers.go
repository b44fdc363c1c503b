// Package catalog contains the HTTP handlers of the provider and product
// resources. All routes here sit behind the access gate.
package catalog

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"supplyhub/internal/catalog/domain/entities"
	"supplyhub/internal/catalog/ports/api"
	"supplyhub/internal/server/http/dto"
	"supplyhub/internal/server/http/respond"
	"supplyhub/internal/validation"
	"supplyhub/pkg/logger"
)

const (
	logProviderCreate = "provider handler: create"
	logProviderIndex  = "provider handler: index"
	logProviderFind   = "provider handler: find"
	logProviderEdit   = "provider handler: edit"
	logProviderDelete = "provider handler: delete"

	errorInvalidBody   = "invalid request body"
	errorServeProvider = "failed to serve provider request"
)

// countryCodeErrors is the field-error list returned for a country code
// the external registry does not know.
func countryCodeErrors() []validation.FieldError {
	return []validation.FieldError{
		{Message: validation.MsgInvalidCountryCode, Path: []string{"country_code"}},
	}
}

// ProviderHandler contains the provider CRUD handlers.
type ProviderHandler struct {
	providers api.ProviderUseCase
}

// NewProviderHandler creates a new provider handler.
func NewProviderHandler(providers api.ProviderUseCase) *ProviderHandler {
	return &ProviderHandler{providers: providers}
}

func (h *ProviderHandler) fail(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)

	switch {
	case errors.Is(err, entities.ErrInvalidCountryCode):
		return respond.Fail(ctx, http.StatusBadRequest, countryCodeErrors())
	case errors.Is(err, entities.ErrProviderNotFound):
		return respond.Fail(ctx, http.StatusNotFound, respond.MsgRecordNotFound)
	}

	log.Error(requestCtx, errorServeProvider, zap.Error(err))
	return respond.Fail(ctx, http.StatusBadRequest, respond.MsgGenericError)
}

// Create handles provider creation.
func (h *ProviderHandler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logProviderCreate)

	var req dto.ProviderCreateRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, errorInvalidBody, zap.Error(err))
		return respond.Fail(ctx, http.StatusBadRequest, respond.MsgGenericError)
	}

	input, fieldErrs := validation.ValidateProviderCreate(&req)
	if fieldErrs != nil {
		return respond.Fail(ctx, http.StatusBadRequest, fieldErrs)
	}

	provider, err := h.providers.Create(requestCtx, input)
	if err != nil {
		return h.fail(ctx, err)
	}

	return respond.Success(ctx, http.StatusOK, provider)
}

// Index returns one provider by id, optionally narrowed by ?fields=.
func (h *ProviderHandler) Index(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logProviderIndex)

	provider, err := h.providers.Get(requestCtx, ctx.Params("id"))
	if err != nil {
		return h.fail(ctx, err)
	}

	return respond.Success(ctx, http.StatusOK, project(provider, ctx.Query("fields")))
}

// Find lists providers filtered by ?name= (contains) and ?country_code=
// (equals), optionally narrowed by ?fields=.
func (h *ProviderHandler) Find(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logProviderFind)

	providers, err := h.providers.List(requestCtx, entities.ProviderFilter{
		Name:        ctx.Query("name"),
		CountryCode: ctx.Query("country_code"),
	})
	if err != nil {
		return h.fail(ctx, err)
	}

	return respond.Success(ctx, http.StatusOK, project(providers, ctx.Query("fields")))
}

// Edit updates the provided fields of a provider.
func (h *ProviderHandler) Edit(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logProviderEdit)

	var req dto.ProviderEditRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, errorInvalidBody, zap.Error(err))
		return respond.Fail(ctx, http.StatusBadRequest, respond.MsgGenericError)
	}

	input, fieldErrs := validation.ValidateProviderEdit(&req)
	if fieldErrs != nil {
		return respond.Fail(ctx, http.StatusBadRequest, fieldErrs)
	}

	provider, err := h.providers.Edit(requestCtx, ctx.Params("id"), input)
	if err != nil {
		return h.fail(ctx, err)
	}

	return respond.Success(ctx, http.StatusOK, provider)
}

// Delete removes a provider.
func (h *ProviderHandler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logProviderDelete)

	if err := h.providers.Delete(requestCtx, ctx.Params("id")); err != nil {
		return h.fail(ctx, err)
	}

	return respond.Success(ctx, http.StatusOK, fiber.Map{"deleted": true})
}
