package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"supplyhub/internal/catalog/domain/entities"
	"supplyhub/internal/catalog/ports/api"
	"supplyhub/internal/catalog/ports/repositories"
	"supplyhub/pkg/logger"
)

const (
	msgProductCreated = "product created"
	msgProductUpdated = "product updated"
	msgProductDeleted = "product deleted"

	errCtxCreatingProduct = "creating product"
	errCtxFindingProduct  = "finding product"
	errCtxListingProducts = "listing products"
	errCtxUpdatingProduct = "updating product"
	errCtxDeletingProduct = "deleting product"
	errCtxCheckingOwner   = "checking product provider"
)

// ProductUseCaseImpl implements the ProductUseCase interface.
type ProductUseCaseImpl struct {
	repo      repositories.ProductRepository
	providers repositories.ProviderRepository
}

// NewProductUseCase creates a new product service.
func NewProductUseCase(repo repositories.ProductRepository, providers repositories.ProviderRepository) api.ProductUseCase {
	return &ProductUseCaseImpl{repo: repo, providers: providers}
}

// Create stores a product after checking the owning provider exists.
func (u *ProductUseCaseImpl) Create(ctx context.Context, input api.CreateProductInput) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("usecase", "product"), zap.String("method", "Create"))

	if _, err := u.providers.FindByID(ctx, input.ProviderID); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCheckingOwner, err)
	}

	created, err := u.repo.Create(ctx, &entities.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Category:    input.Category,
		ProviderID:  input.ProviderID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingProduct, err)
	}

	log.Info(ctx, msgProductCreated, zap.String("productID", created.ID))
	return created, nil
}

// Get returns one product by id.
func (u *ProductUseCaseImpl) Get(ctx context.Context, id string) (*entities.Product, error) {
	product, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFindingProduct, err)
	}
	return product, nil
}

// List returns products matching the filter.
func (u *ProductUseCaseImpl) List(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error) {
	products, err := u.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingProducts, err)
	}
	return products, nil
}

// Edit applies the given changes. A provider change is re-checked against
// the provider directory.
func (u *ProductUseCaseImpl) Edit(ctx context.Context, id string, input api.EditProductInput) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("usecase", "product"), zap.String("method", "Edit"))

	if input.ProviderID != nil {
		if _, err := u.providers.FindByID(ctx, *input.ProviderID); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxCheckingOwner, err)
		}
	}

	updated, err := u.repo.Update(ctx, id, repositories.ProductUpdate{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Category:    input.Category,
		ProviderID:  input.ProviderID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingProduct, err)
	}

	log.Info(ctx, msgProductUpdated, zap.String("productID", updated.ID))
	return updated, nil
}

// Delete removes a product.
func (u *ProductUseCaseImpl) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("usecase", "product"), zap.String("method", "Delete"))

	if err := u.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingProduct, err)
	}

	log.Info(ctx, msgProductDeleted, zap.String("productID", id))
	return nil
}
