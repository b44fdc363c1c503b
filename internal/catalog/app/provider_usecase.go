// Package app contains the application services of the catalog.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"supplyhub/internal/catalog/domain/entities"
	"supplyhub/internal/catalog/ports/api"
	"supplyhub/internal/catalog/ports/repositories"
	svc "supplyhub/internal/catalog/ports/services"
	"supplyhub/pkg/logger"
)

const (
	msgProviderCreated = "provider created"
	msgProviderUpdated = "provider updated"
	msgProviderDeleted = "provider deleted"
	msgUnknownCountry  = "unknown country code"

	errCtxVerifyingCountry = "verifying country code"
	errCtxCreatingProvider = "creating provider"
	errCtxFindingProvider  = "finding provider"
	errCtxListingProviders = "listing providers"
	errCtxUpdatingProvider = "updating provider"
	errCtxDeletingProvider = "deleting provider"
)

// ProviderUseCaseImpl implements the ProviderUseCase interface.
type ProviderUseCaseImpl struct {
	repo      repositories.ProviderRepository
	countries svc.CountryVerifier
}

// NewProviderUseCase creates a new provider service.
func NewProviderUseCase(repo repositories.ProviderRepository, countries svc.CountryVerifier) api.ProviderUseCase {
	return &ProviderUseCaseImpl{repo: repo, countries: countries}
}

func (u *ProviderUseCaseImpl) verifyCountry(ctx context.Context, code string) error {
	known, err := u.countries.VerifyCode(ctx, code)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxVerifyingCountry, err)
	}
	if !known {
		logger.Log(ctx).Debug(ctx, msgUnknownCountry, zap.String("code", code))
		return fmt.Errorf("%s: %w", errCtxVerifyingCountry, entities.ErrInvalidCountryCode)
	}
	return nil
}

// Create validates the country code and stores the provider.
func (u *ProviderUseCaseImpl) Create(ctx context.Context, input api.CreateProviderInput) (*entities.Provider, error) {
	log := logger.Log(ctx).With(zap.String("usecase", "provider"), zap.String("method", "Create"))

	if err := u.verifyCountry(ctx, input.CountryCode); err != nil {
		return nil, err
	}

	created, err := u.repo.Create(ctx, &entities.Provider{
		Name:        input.Name,
		CountryCode: input.CountryCode,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingProvider, err)
	}

	log.Info(ctx, msgProviderCreated, zap.String("providerID", created.ID))
	return created, nil
}

// Get returns one provider by id.
func (u *ProviderUseCaseImpl) Get(ctx context.Context, id string) (*entities.Provider, error) {
	provider, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFindingProvider, err)
	}
	return provider, nil
}

// List returns providers matching the filter.
func (u *ProviderUseCaseImpl) List(ctx context.Context, filter entities.ProviderFilter) ([]*entities.Provider, error) {
	providers, err := u.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingProviders, err)
	}
	return providers, nil
}

// Edit applies the given changes. The country code is re-validated only
// when the edit actually changes it.
func (u *ProviderUseCaseImpl) Edit(ctx context.Context, id string, input api.EditProviderInput) (*entities.Provider, error) {
	log := logger.Log(ctx).With(zap.String("usecase", "provider"), zap.String("method", "Edit"))

	if input.CountryCode != nil {
		if err := u.verifyCountry(ctx, *input.CountryCode); err != nil {
			return nil, err
		}
	}

	updated, err := u.repo.Update(ctx, id, repositories.ProviderUpdate{
		Name:        input.Name,
		CountryCode: input.CountryCode,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingProvider, err)
	}

	log.Info(ctx, msgProviderUpdated, zap.String("providerID", updated.ID))
	return updated, nil
}

// Delete removes a provider.
func (u *ProviderUseCaseImpl) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("usecase", "provider"), zap.String("method", "Delete"))

	if err := u.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingProvider, err)
	}

	log.Info(ctx, msgProviderDeleted, zap.String("providerID", id))
	return nil
}
