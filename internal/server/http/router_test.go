package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adapters "supplyhub/internal/auth/adapters/services"
	authentities "supplyhub/internal/auth/domain/entities"
	authservices "supplyhub/internal/auth/domain/services"
	"supplyhub/internal/catalog/domain/entities"
	"supplyhub/internal/catalog/ports/api"
	httpserver "supplyhub/internal/server/http"
	"supplyhub/internal/server/http/respond"
)

const (
	testSecret = "test-secret-key"
	testEmail  = "user@example.com"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *authentities.User) (*authentities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authentities.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*authentities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authentities.User), args.Error(1)
}

type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Register(ctx context.Context, email, name, password string) (*authservices.Session, error) {
	args := m.Called(ctx, email, name, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authservices.Session), args.Error(1)
}

func (m *mockAuthUseCase) Login(ctx context.Context, email, password string) (*authservices.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authservices.Session), args.Error(1)
}

func (m *mockAuthUseCase) RefreshTokens(ctx context.Context, refreshToken string) (*authservices.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authservices.TokenPair), args.Error(1)
}

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

type routerMocks struct {
	authUseCase     *mockAuthUseCase
	userRepo        *mockUserRepository
	providerUseCase *mockProviderUseCase
	productUseCase  *mockProductUseCase
}

func setupRouter(t *testing.T) (*fiber.App, *routerMocks) {
	t.Helper()

	mocks := &routerMocks{
		authUseCase:     new(mockAuthUseCase),
		userRepo:        new(mockUserRepository),
		providerUseCase: new(mockProviderUseCase),
		productUseCase:  new(mockProductUseCase),
	}

	app := fiber.New()
	httpserver.SetupRouter(app, httpserver.Deps{
		AuthUseCase:     mocks.authUseCase,
		TokenService:    adapters.NewJWT(testSecret, 2*time.Hour, 48*time.Hour),
		UserRepository:  mocks.userRepo,
		ProviderUseCase: mocks.providerUseCase,
		ProductUseCase:  mocks.productUseCase,
	})
	return app, mocks
}

func decodeEnvelope(t *testing.T, resp *http.Response) respond.Envelope {
	t.Helper()
	var envelope respond.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

func TestProtectedRoutesRequireAccessToken(t *testing.T) {
	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/v1/auth/provider"},
		{http.MethodGet, "/v1/auth/provider"},
		{http.MethodGet, "/v1/auth/provider/some-id"},
		{http.MethodPatch, "/v1/auth/provider/some-id"},
		{http.MethodDelete, "/v1/auth/provider/some-id"},
		{http.MethodPost, "/v1/auth/product"},
		{http.MethodGet, "/v1/auth/product"},
		{http.MethodGet, "/v1/auth/product/some-id"},
		{http.MethodPatch, "/v1/auth/product/some-id"},
		{http.MethodDelete, "/v1/auth/product/some-id"},
	}

	for _, route := range paths {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			app, mocks := setupRouter(t)

			req := httptest.NewRequest(route.method, route.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			envelope := decodeEnvelope(t, resp)
			assert.False(t, envelope.Success)
			assert.Equal(t, respond.MsgTokenNotProvided, envelope.Error)

			// The gate fails closed: nothing downstream was touched.
			mocks.providerUseCase.AssertExpectations(t)
			mocks.productUseCase.AssertExpectations(t)
		})
	}
}

func TestProtectedRouteAcceptsValidToken(t *testing.T) {
	app, mocks := setupRouter(t)

	issuer := adapters.NewJWT(testSecret, 2*time.Hour, 48*time.Hour)
	pair, err := issuer.IssuePair(context.Background(), testEmail)
	require.NoError(t, err)

	user := &authentities.User{ID: "user-123", Email: testEmail, Name: "Test User"}
	mocks.userRepo.On("FindByEmail", mock.Anything, testEmail).Return(user, nil).Once()
	mocks.providerUseCase.On("List", mock.Anything, entities.ProviderFilter{}).
		Return([]*entities.Provider{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/provider", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken.Token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	envelope := decodeEnvelope(t, resp)
	assert.True(t, envelope.Success)

	mocks.userRepo.AssertExpectations(t)
	mocks.providerUseCase.AssertExpectations(t)
}

func TestProtectedRouteRejectsExpiredToken(t *testing.T) {
	app, mocks := setupRouter(t)

	expiredIssuer := adapters.NewJWT(testSecret, -time.Minute, -time.Minute)
	pair, err := expiredIssuer.IssuePair(context.Background(), testEmail)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/provider", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken.Token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, respond.MsgInvalidOrExpiredToken, envelope.Error)

	mocks.userRepo.AssertExpectations(t)
	mocks.providerUseCase.AssertExpectations(t)
}

// Refresh tokens open no door but the refresh endpoint itself.
func TestRefreshTokenRejectedAtTheGate(t *testing.T) {
	app, _ := setupRouter(t)

	issuer := adapters.NewJWT(testSecret, 2*time.Hour, 48*time.Hour)
	pair, err := issuer.IssuePair(context.Background(), testEmail)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/provider", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken.Token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	app, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/nowhere", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	envelope := decodeEnvelope(t, resp)
	assert.False(t, envelope.Success)
	assert.Equal(t, respond.MsgRouteNotFound, envelope.Error)
}
