package services

import (
	"errors"
)

// Password hashing errors. A wrong password is not an error: Verify
// reports it as a plain false. ErrMalformedHash signals a corrupted
// stored digest, which is an integrity problem, not a user mistake.
var (
	ErrHashingFailed = errors.New("failed to hash password")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrMalformedHash = errors.New("stored password hash is malformed")
)
