package dto

// Pointer fields distinguish "absent" from "zero" so that edit payloads
// can leave fields untouched.

// ProviderCreateRequest is the provider creation payload.
type ProviderCreateRequest struct {
	Name        *string `json:"name"`
	CountryCode *string `json:"country_code"`
}

// ProviderEditRequest is the provider edit payload.
type ProviderEditRequest struct {
	Name        *string `json:"name"`
	CountryCode *string `json:"country_code"`
}

// ProductCreateRequest is the product creation payload.
type ProductCreateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Category    *string  `json:"category"`
	ProviderID  *string  `json:"providerId"`
}

// ProductEditRequest is the product edit payload.
type ProductEditRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Category    *string  `json:"category"`
	ProviderID  *string  `json:"providerId"`
}
