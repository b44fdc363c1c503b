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
	logProductCreate = "product handler: create"
	logProductIndex  = "product handler: index"
	logProductFind   = "product handler: find"
	logProductEdit   = "product handler: edit"
	logProductDelete = "product handler: delete"

	errorServeProduct = "failed to serve product request"
)

// ProductHandler contains the product CRUD handlers.
type ProductHandler struct {
	products api.ProductUseCase
}

// NewProductHandler creates a new product handler.
func NewProductHandler(products api.ProductUseCase) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) fail(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)

	switch {
	case errors.Is(err, entities.ErrProviderNotFound):
		return respond.Fail(ctx, http.StatusBadRequest, []validation.FieldError{
			{Message: validation.MsgProviderIDTooShort, Path: []string{"providerId"}},
		})
	case errors.Is(err, entities.ErrProductNotFound):
		return respond.Fail(ctx, http.StatusNotFound, respond.MsgRecordNotFound)
	}

	log.Error(requestCtx, errorServeProduct, zap.Error(err))
	return respond.Fail(ctx, http.StatusBadRequest, respond.MsgGenericError)
}

// Create handles product creation.
func (h *ProductHandler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logProductCreate)

	var req dto.ProductCreateRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, errorInvalidBody, zap.Error(err))
		return respond.Fail(ctx, http.StatusBadRequest, respond.MsgGenericError)
	}

	input, fieldErrs := validation.ValidateProductCreate(&req)
	if fieldErrs != nil {
		return respond.Fail(ctx, http.StatusBadRequest, fieldErrs)
	}

	product, err := h.products.Create(requestCtx, input)
	if err != nil {
		return h.fail(ctx, err)
	}

	return respond.Success(ctx, http.StatusOK, product)
}

// Index returns one product by id, optionally narrowed by ?fields=.
func (h *ProductHandler) Index(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logProductIndex)

	product, err := h.products.Get(requestCtx, ctx.Params("id"))
	if err != nil {
		return h.fail(ctx, err)
	}

	return respond.Success(ctx, http.StatusOK, project(product, ctx.Query("fields")))
}

// Find lists products filtered by ?name= (contains), ?category= and
// ?provider_id= (equals), optionally narrowed by ?fields=.
func (h *ProductHandler) Find(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logProductFind)

	products, err := h.products.List(requestCtx, entities.ProductFilter{
		Name:       ctx.Query("name"),
		Category:   ctx.Query("category"),
		ProviderID: ctx.Query("provider_id"),
	})
	if err != nil {
		return h.fail(ctx, err)
	}

	return respond.Success(ctx, http.StatusOK, project(products, ctx.Query("fields")))
}

// Edit updates the provided fields of a product.
func (h *ProductHandler) Edit(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logProductEdit)

	var req dto.ProductEditRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, errorInvalidBody, zap.Error(err))
		return respond.Fail(ctx, http.StatusBadRequest, respond.MsgGenericError)
	}

	input, fieldErrs := validation.ValidateProductEdit(&req)
	if fieldErrs != nil {
		return respond.Fail(ctx, http.StatusBadRequest, fieldErrs)
	}

	product, err := h.products.Edit(requestCtx, ctx.Params("id"), input)
	if err != nil {
		return h.fail(ctx, err)
	}

	return respond.Success(ctx, http.StatusOK, product)
}

// Delete removes a product.
func (h *ProductHandler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logProductDelete)

	if err := h.products.Delete(requestCtx, ctx.Params("id")); err != nil {
		return h.fail(ctx, err)
	}

	return respond.Success(ctx, http.StatusOK, fiber.Map{"deleted": true})
}
