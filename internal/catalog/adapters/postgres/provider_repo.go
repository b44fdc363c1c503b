// Package postgres implements the catalog repositories over Postgres.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"supplyhub/internal/catalog/domain/entities"
	"supplyhub/internal/catalog/ports/repositories"
	"supplyhub/pkg/logger"
)

// PgxPoolInterface is the subset of the pgx pool used by the repositories.
// It exists so tests can substitute pgxmock.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Close()
}

const providerColumns = "id, name, country_code, created_at, updated_at"

// ProviderRepository implements repositories.ProviderRepository.
type ProviderRepository struct {
	pool PgxPoolInterface
}

// NewProviderRepository creates a new provider repository.
func NewProviderRepository(pool PgxPoolInterface) repositories.ProviderRepository {
	return &ProviderRepository{pool: pool}
}

func scanProvider(row pgx.Row) (*entities.Provider, error) {
	var p entities.Provider
	err := row.Scan(&p.ID, &p.Name, &p.CountryCode, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &p, nil
}

// Create inserts a new provider.
func (r *ProviderRepository) Create(ctx context.Context, provider *entities.Provider) (*entities.Provider, error) {
	log := logger.Log(ctx).With(zap.String("repository", "provider"), zap.String("method", "Create"))

	query := `
        INSERT INTO providers (name, country_code)
        VALUES ($1, $2)
        RETURNING ` + providerColumns

	created, err := scanProvider(r.pool.QueryRow(ctx, query, provider.Name, provider.CountryCode))
	if err != nil {
		log.Error(ctx, "error creating provider", zap.Error(err))
		return nil, fmt.Errorf("error creating provider: %w", err)
	}
	return created, nil
}

// FindByID finds a provider by id.
func (r *ProviderRepository) FindByID(ctx context.Context, id string) (*entities.Provider, error) {
	log := logger.Log(ctx).With(zap.String("repository", "provider"), zap.String("method", "FindByID"))

	query := `SELECT ` + providerColumns + ` FROM providers WHERE id = $1`

	provider, err := scanProvider(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "provider not found", zap.String("id", id))
			return nil, entities.ErrProviderNotFound
		}
		log.Error(ctx, "error finding provider", zap.Error(err))
		return nil, fmt.Errorf("error querying provider by id: %w", err)
	}
	return provider, nil
}

// Find lists providers matching the filter. The WHERE clause is built
// dynamically from the non-zero filter fields, always with placeholders.
func (r *ProviderRepository) Find(ctx context.Context, filter entities.ProviderFilter) ([]*entities.Provider, error) {
	log := logger.Log(ctx).With(zap.String("repository", "provider"), zap.String("method", "Find"))

	query := `SELECT ` + providerColumns + ` FROM providers`

	var conditions []string
	var args []interface{}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.CountryCode != "" {
		args = append(args, filter.CountryCode)
		conditions = append(conditions, fmt.Sprintf("country_code = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "error listing providers", zap.Error(err))
		return nil, fmt.Errorf("error querying providers: %w", err)
	}
	defer rows.Close()

	providers := make([]*entities.Provider, 0)
	for rows.Next() {
		provider, err := scanProvider(rows)
		if err != nil {
			log.Error(ctx, "error scanning provider row", zap.Error(err))
			return nil, fmt.Errorf("error scanning provider row: %w", err)
		}
		providers = append(providers, provider)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating provider rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating provider rows: %w", err)
	}
	return providers, nil
}

// Update applies the non-nil fields of the update.
func (r *ProviderRepository) Update(ctx context.Context, id string, update repositories.ProviderUpdate) (*entities.Provider, error) {
	log := logger.Log(ctx).With(zap.String("repository", "provider"), zap.String("method", "Update"))

	sets := []string{"updated_at = now()"}
	args := []interface{}{id}

	if update.Name != nil {
		args = append(args, *update.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if update.CountryCode != nil {
		args = append(args, *update.CountryCode)
		sets = append(sets, fmt.Sprintf("country_code = $%d", len(args)))
	}

	query := fmt.Sprintf(`UPDATE providers SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), providerColumns)

	updated, err := scanProvider(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "provider not found", zap.String("id", id))
			return nil, entities.ErrProviderNotFound
		}
		log.Error(ctx, "error updating provider", zap.Error(err))
		return nil, fmt.Errorf("error updating provider: %w", err)
	}
	return updated, nil
}

// Delete removes a provider.
func (r *ProviderRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "provider"), zap.String("method", "Delete"))

	tag, err := r.pool.Exec(ctx, `DELETE FROM providers WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, "error deleting provider", zap.Error(err))
		return fmt.Errorf("error deleting provider: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Debug(ctx, "provider not found", zap.String("id", id))
		return entities.ErrProviderNotFound
	}
	return nil
}
