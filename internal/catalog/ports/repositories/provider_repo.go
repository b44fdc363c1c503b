// Package repositories defines the persistence boundary of the catalog.
package repositories

import (
	"context"

	"supplyhub/internal/catalog/domain/entities"
)

// ProviderUpdate carries the mutable provider fields; nil means "keep".
type ProviderUpdate struct {
	Name        *string
	CountryCode *string
}

// ProviderRepository persists providers.
type ProviderRepository interface {
	Create(ctx context.Context, provider *entities.Provider) (*entities.Provider, error)

	FindByID(ctx context.Context, id string) (*entities.Provider, error)

	Find(ctx context.Context, filter entities.ProviderFilter) ([]*entities.Provider, error)

	Update(ctx context.Context, id string, update ProviderUpdate) (*entities.Provider, error)

	Delete(ctx context.Context, id string) error
}
