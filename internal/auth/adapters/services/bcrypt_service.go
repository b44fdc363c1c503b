package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"supplyhub/internal/auth/domain/services"
	svc "supplyhub/internal/auth/ports/services"
)

const (
	errMsgFailedToGenerateHash = "failed to generate password hash"
	errMsgMalformedHash        = "stored hash could not be processed"
)

// ServiceBcrypt implements the PasswordService port with bcrypt. The cost
// factor is fixed at construction so every account shares one baseline.
type ServiceBcrypt struct {
	cost int
}

// NewBcrypt creates a new bcrypt password service.
func NewBcrypt(cost int) svc.PasswordService {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &ServiceBcrypt{cost: cost}
}

// Hash hashes the password with a fresh random salt. The digest differs
// between calls for the same input; equality of digests must never be
// used for verification.
func (s *ServiceBcrypt) Hash(_ context.Context, password string) (string, error) {
	if password == "" {
		return "", services.ErrEmptyPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errMsgFailedToGenerateHash, services.ErrHashingFailed)
	}

	return string(hashedBytes), nil
}

// Verify reports whether the password matches the hash. A mismatch is not
// an error; only a malformed stored digest is.
func (s *ServiceBcrypt) Verify(_ context.Context, password, hash string) (bool, error) {
	if password == "" || hash == "" {
		return false, services.ErrEmptyPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", errMsgMalformedHash, services.ErrMalformedHash)
	}

	return true, nil
}
