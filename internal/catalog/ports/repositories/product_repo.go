package repositories

import (
	"context"

	"supplyhub/internal/catalog/domain/entities"
)

// ProductUpdate carries the mutable product fields; nil means "keep".
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Quantity    *int
	Category    *string
	ProviderID  *string
}

// ProductRepository persists products.
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) (*entities.Product, error)

	FindByID(ctx context.Context, id string) (*entities.Product, error)

	Find(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error)

	Update(ctx context.Context, id string, update ProductUpdate) (*entities.Product, error)

	Delete(ctx context.Context, id string) error
}
