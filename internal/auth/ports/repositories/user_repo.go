// Package repositories defines the persistence boundary of the auth core.
package repositories

import (
	"context"

	"supplyhub/internal/auth/domain/entities"
)

// UserRepository is the account directory. It owns email uniqueness;
// Create reports a duplicate as services.ErrEmailAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
