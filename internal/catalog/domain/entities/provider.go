// Package entities contains the catalog domain model.
package entities

import (
	"errors"
	"time"
)

// Provider domain errors.
var (
	ErrProviderNotFound   = errors.New("provider not found")
	ErrInvalidCountryCode = errors.New("invalid country code")
)

// Provider represents a supplier of products.
type Provider struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CountryCode string    `json:"country_code"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProviderFilter narrows provider listings. Zero values mean "no filter".
type ProviderFilter struct {
	Name        string
	CountryCode string
}
