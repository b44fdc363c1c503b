package entities

import (
	"errors"
	"time"
)

// Product domain errors.
var (
	ErrProductNotFound = errors.New("product not found")
)

// Product represents a catalog item belonging to a provider.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Quantity    *int      `json:"quantity"`
	Category    string    `json:"category"`
	ProviderID  string    `json:"providerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductFilter narrows product listings. Zero values mean "no filter".
type ProductFilter struct {
	Name       string
	Category   string
	ProviderID string
}
