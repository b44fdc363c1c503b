// Package http wires the HTTP routes of the service.
package http

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	authapi "supplyhub/internal/auth/ports/api"
	"supplyhub/internal/auth/ports/repositories"
	svc "supplyhub/internal/auth/ports/services"
	catalogapi "supplyhub/internal/catalog/ports/api"
	"supplyhub/internal/server/http/auth"
	"supplyhub/internal/server/http/catalog"
	"supplyhub/internal/server/http/middleware"
	"supplyhub/internal/server/http/respond"
)

// Deps bundles everything the router needs.
type Deps struct {
	AuthUseCase     authapi.AuthUseCase
	TokenService    svc.TokenService
	UserRepository  repositories.UserRepository
	ProviderUseCase catalogapi.ProviderUseCase
	ProductUseCase  catalogapi.ProductUseCase
}

// SetupRouter configures the route tree. Register, login and refresh are
// public; everything under /v1/auth sits behind the access gate.
func SetupRouter(app *fiber.App, deps Deps) {
	authHandler := auth.NewHandler(deps.AuthUseCase)
	providerHandler := catalog.NewProviderHandler(deps.ProviderUseCase)
	productHandler := catalog.NewProductHandler(deps.ProductUseCase)

	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	apiV1 := app.Group("/v1")

	apiV1.Post("/register", authHandler.Register)
	apiV1.Post("/login", authHandler.Login)
	apiV1.Post("/utils/refresh-token", authHandler.RefreshTokens)

	protected := apiV1.Group("/auth")
	protected.Use(middleware.NewAuthMiddleware(deps.TokenService, deps.UserRepository))

	providerRoutes := protected.Group("/provider")
	providerRoutes.Post("/", providerHandler.Create)
	providerRoutes.Get("/", providerHandler.Find)
	providerRoutes.Get("/:id", providerHandler.Index)
	providerRoutes.Patch("/:id", providerHandler.Edit)
	providerRoutes.Delete("/:id", providerHandler.Delete)

	productRoutes := protected.Group("/product")
	productRoutes.Post("/", productHandler.Create)
	productRoutes.Get("/", productHandler.Find)
	productRoutes.Get("/:id", productHandler.Index)
	productRoutes.Patch("/:id", productHandler.Edit)
	productRoutes.Delete("/:id", productHandler.Delete)

	app.Use(func(c fiber.Ctx) error {
		return respond.Fail(c, http.StatusNotFound, respond.MsgRouteNotFound)
	})
}
