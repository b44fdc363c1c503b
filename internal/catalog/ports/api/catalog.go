// Package api defines the application-facing interfaces of the catalog.
package api

import (
	"context"

	"supplyhub/internal/catalog/domain/entities"
)

// CreateProviderInput is a validated provider creation payload.
type CreateProviderInput struct {
	Name        string
	CountryCode string
}

// EditProviderInput carries optional provider changes; nil means "keep".
type EditProviderInput struct {
	Name        *string
	CountryCode *string
}

// CreateProductInput is a validated product creation payload.
type CreateProductInput struct {
	Name        string
	Description *string
	Price       *float64
	Quantity    *int
	Category    string
	ProviderID  string
}

// EditProductInput carries optional product changes; nil means "keep".
type EditProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Quantity    *int
	Category    *string
	ProviderID  *string
}

// ProviderUseCase exposes provider CRUD.
type ProviderUseCase interface {
	Create(ctx context.Context, input CreateProviderInput) (*entities.Provider, error)
	Get(ctx context.Context, id string) (*entities.Provider, error)
	List(ctx context.Context, filter entities.ProviderFilter) ([]*entities.Provider, error)
	Edit(ctx context.Context, id string, input EditProviderInput) (*entities.Provider, error)
	Delete(ctx context.Context, id string) error
}

// ProductUseCase exposes product CRUD.
type ProductUseCase interface {
	Create(ctx context.Context, input CreateProductInput) (*entities.Product, error)
	Get(ctx context.Context, id string) (*entities.Product, error)
	List(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error)
	Edit(ctx context.Context, id string, input EditProductInput) (*entities.Product, error)
	Delete(ctx context.Context, id string) error
}
