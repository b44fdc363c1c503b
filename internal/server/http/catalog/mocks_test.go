package catalog_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"supplyhub/internal/catalog/domain/entities"
	"supplyhub/internal/catalog/ports/api"
)

type mockProviderUseCase struct {
	mock.Mock
}

func (m *mockProviderUseCase) Create(ctx context.Context, input api.CreateProviderInput) (*entities.Provider, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Provider), args.Error(1)
}

func (m *mockProviderUseCase) Get(ctx context.Context, id string) (*entities.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Provider), args.Error(1)
}

func (m *mockProviderUseCase) List(ctx context.Context, filter entities.ProviderFilter) ([]*entities.Provider, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Provider), args.Error(1)
}

func (m *mockProviderUseCase) Edit(ctx context.Context, id string, input api.EditProviderInput) (*entities.Provider, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Provider), args.Error(1)
}

func (m *mockProviderUseCase) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockProductUseCase struct {
	mock.Mock
}

func (m *mockProductUseCase) Create(ctx context.Context, input api.CreateProductInput) (*entities.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *mockProductUseCase) Get(ctx context.Context, id string) (*entities.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *mockProductUseCase) List(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

func (m *mockProductUseCase) Edit(ctx context.Context, id string, input api.EditProductInput) (*entities.Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *mockProductUseCase) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
