package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"supplyhub/internal/catalog/domain/entities"
	"supplyhub/internal/catalog/ports/repositories"
	"supplyhub/pkg/logger"
)

const productColumns = "id, name, description, price, quantity, category, provider_id, created_at, updated_at"

// ProductRepository implements repositories.ProductRepository.
type ProductRepository struct {
	pool PgxPoolInterface
}

// NewProductRepository creates a new product repository.
func NewProductRepository(pool PgxPoolInterface) repositories.ProductRepository {
	return &ProductRepository{pool: pool}
}

func scanProduct(row pgx.Row) (*entities.Product, error) {
	var p entities.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity,
		&p.Category, &p.ProviderID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &p, nil
}

// Create inserts a new product.
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "Create"))

	query := `
        INSERT INTO products (name, description, price, quantity, category, provider_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + productColumns

	created, err := scanProduct(r.pool.QueryRow(ctx, query,
		product.Name, product.Description, product.Price,
		product.Quantity, product.Category, product.ProviderID))
	if err != nil {
		log.Error(ctx, "error creating product", zap.Error(err))
		return nil, fmt.Errorf("error creating product: %w", err)
	}
	return created, nil
}

// FindByID finds a product by id.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "FindByID"))

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "product not found", zap.String("id", id))
			return nil, entities.ErrProductNotFound
		}
		log.Error(ctx, "error finding product", zap.Error(err))
		return nil, fmt.Errorf("error querying product by id: %w", err)
	}
	return product, nil
}

// Find lists products matching the filter.
func (r *ProductRepository) Find(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "Find"))

	query := `SELECT ` + productColumns + ` FROM products`

	var conditions []string
	var args []interface{}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.ProviderID != "" {
		args = append(args, filter.ProviderID)
		conditions = append(conditions, fmt.Sprintf("provider_id = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "error listing products", zap.Error(err))
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	products := make([]*entities.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Error(ctx, "error scanning product row", zap.Error(err))
			return nil, fmt.Errorf("error scanning product row: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating product rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// Update applies the non-nil fields of the update.
func (r *ProductRepository) Update(ctx context.Context, id string, update repositories.ProductUpdate) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "Update"))

	sets := []string{"updated_at = now()"}
	args := []interface{}{id}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		appendSet("name", *update.Name)
	}
	if update.Description != nil {
		appendSet("description", *update.Description)
	}
	if update.Price != nil {
		appendSet("price", *update.Price)
	}
	if update.Quantity != nil {
		appendSet("quantity", *update.Quantity)
	}
	if update.Category != nil {
		appendSet("category", *update.Category)
	}
	if update.ProviderID != nil {
		appendSet("provider_id", *update.ProviderID)
	}

	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), productColumns)

	updated, err := scanProduct(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "product not found", zap.String("id", id))
			return nil, entities.ErrProductNotFound
		}
		log.Error(ctx, "error updating product", zap.Error(err))
		return nil, fmt.Errorf("error updating product: %w", err)
	}
	return updated, nil
}

// Delete removes a product.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "Delete"))

	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, "error deleting product", zap.Error(err))
		return fmt.Errorf("error deleting product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Debug(ctx, "product not found", zap.String("id", id))
		return entities.ErrProductNotFound
	}
	return nil
}
