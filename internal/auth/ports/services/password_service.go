package services

import "context"

// PasswordService defines the one-way password hashing operations.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)

	// Verify reports whether the password matches the stored hash. A
	// mismatch is (false, nil); an error means the stored hash itself
	// could not be processed.
	Verify(ctx context.Context, password, hash string) (bool, error)
}
