package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplyhub/internal/catalog/adapters/postgres"
	"supplyhub/internal/catalog/domain/entities"
	"supplyhub/internal/catalog/ports/repositories"
)

var productColumns = []string{
	"id", "name", "description", "price", "quantity",
	"category", "provider_id", "created_at", "updated_at",
}

func testProduct() entities.Product {
	now := time.Now().UTC().Truncate(time.Microsecond)
	description := "A sturdy widget for industrial use"
	price := 19.90
	quantity := 42
	return entities.Product{
		ID:          "7f8e9d0c-1b2a-4c3d-8e9f-0a1b2c3d4e5f",
		Name:        "Widget Deluxe",
		Description: &description,
		Price:       &price,
		Quantity:    &quantity,
		Category:    "hardware",
		ProviderID:  "0b9e1d9e-5f0e-4f7a-9d43-6f2e1a2b3c4d",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func productRows(p entities.Product) *pgxmock.Rows {
	return pgxmock.NewRows(productColumns).
		AddRow(p.ID, p.Name, p.Description, p.Price, p.Quantity,
			p.Category, p.ProviderID, p.CreatedAt, p.UpdatedAt)
}

func TestProductRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	product := testProduct()

	t.Run("success - product created", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO products").
			WithArgs(product.Name, product.Description, product.Price,
				product.Quantity, product.Category, product.ProviderID).
			WillReturnRows(productRows(product))

		repo := postgres.NewProductRepository(mock)
		created, err := repo.Create(ctx, &entities.Product{
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			Quantity:    product.Quantity,
			Category:    product.Category,
			ProviderID:  product.ProviderID,
		})

		require.NoError(t, err)
		assert.Equal(t, product, *created)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - optional fields may be absent", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		sparse := product
		sparse.Description = nil
		sparse.Price = nil
		sparse.Quantity = nil

		mock.ExpectQuery("INSERT INTO products").
			WithArgs(sparse.Name, (*string)(nil), (*float64)(nil), (*int)(nil), sparse.Category, sparse.ProviderID).
			WillReturnRows(productRows(sparse))

		repo := postgres.NewProductRepository(mock)
		created, err := repo.Create(ctx, &entities.Product{
			Name:       sparse.Name,
			Category:   sparse.Category,
			ProviderID: sparse.ProviderID,
		})

		require.NoError(t, err)
		assert.Nil(t, created.Description)
		assert.Nil(t, created.Price)
		assert.Nil(t, created.Quantity)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepositoryFindByID(t *testing.T) {
	ctx := context.Background()
	product := testProduct()

	t.Run("success - product found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, name, description, price, quantity, category, provider_id, created_at, updated_at FROM products WHERE id").
			WithArgs(product.ID).
			WillReturnRows(productRows(product))

		repo := postgres.NewProductRepository(mock)
		found, err := repo.FindByID(ctx, product.ID)

		require.NoError(t, err)
		assert.Equal(t, product, *found)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - product not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, name, description, price, quantity, category, provider_id, created_at, updated_at FROM products WHERE id").
			WithArgs("missing-id").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewProductRepository(mock)
		found, err := repo.FindByID(ctx, "missing-id")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, entities.ErrProductNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepositoryFind(t *testing.T) {
	ctx := context.Background()
	product := testProduct()

	t.Run("success - no filter lists everything", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM products ORDER BY created_at").
			WillReturnRows(productRows(product))

		repo := postgres.NewProductRepository(mock)
		products, err := repo.Find(ctx, entities.ProductFilter{})

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, product, *products[0])
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - combined filters keep placeholder order", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM products WHERE name ILIKE \\$1 AND category = \\$2 AND provider_id = \\$3").
			WithArgs("%Widget%", "hardware", product.ProviderID).
			WillReturnRows(productRows(product))

		repo := postgres.NewProductRepository(mock)
		products, err := repo.Find(ctx, entities.ProductFilter{
			Name:       "Widget",
			Category:   "hardware",
			ProviderID: product.ProviderID,
		})

		require.NoError(t, err)
		require.Len(t, products, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - empty result is an empty slice", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM products").
			WillReturnRows(pgxmock.NewRows(productColumns))

		repo := postgres.NewProductRepository(mock)
		products, err := repo.Find(ctx, entities.ProductFilter{})

		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	product := testProduct()
	newPrice := 29.90

	t.Run("success - partial update only touches given fields", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		updated := product
		updated.Price = &newPrice

		mock.ExpectQuery("UPDATE products SET updated_at = now\\(\\), price = \\$2 WHERE id = \\$1").
			WithArgs(product.ID, newPrice).
			WillReturnRows(productRows(updated))

		repo := postgres.NewProductRepository(mock)
		result, err := repo.Update(ctx, product.ID, repositories.ProductUpdate{Price: &newPrice})

		require.NoError(t, err)
		require.NotNil(t, result.Price)
		assert.InEpsilon(t, newPrice, *result.Price, 1e-9)
		assert.Equal(t, product.Name, result.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - product not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE products SET").
			WithArgs("missing-id", newPrice).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewProductRepository(mock)
		result, err := repo.Update(ctx, "missing-id", repositories.ProductUpdate{Price: &newPrice})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, entities.ErrProductNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	product := testProduct()

	t.Run("success - product deleted", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM products WHERE id").
			WithArgs(product.ID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := postgres.NewProductRepository(mock)
		err = repo.Delete(ctx, product.ID)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - product not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM products WHERE id").
			WithArgs("missing-id").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewProductRepository(mock)
		err = repo.Delete(ctx, "missing-id")

		assert.ErrorIs(t, err, entities.ErrProductNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepositoryDatabaseFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM products").
		WillReturnError(errors.New("database connection failed"))

	repo := postgres.NewProductRepository(mock)
	products, err := repo.Find(context.Background(), entities.ProductFilter{})

	assert.Nil(t, products)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error querying products")
	require.NoError(t, mock.ExpectationsWereMet())
}
