// Package services defines the outbound service ports of the catalog.
package services

import "context"

// CountryVerifier checks whether a country code is known to the external
// country registry. A false result means the code does not exist; an
// error means the registry could not be consulted.
type CountryVerifier interface {
	VerifyCode(ctx context.Context, code string) (bool, error)
}
