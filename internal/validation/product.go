package validation

import (
	"supplyhub/internal/catalog/ports/api"
	"supplyhub/internal/server/http/dto"
)

// Client-facing validation messages.
const (
	MsgProductNameRequired = "Necessário um nome para o produto."
	MsgProductNameTooShort = "Nome muito curto."
	MsgDescriptionTooShort = "Descrição muito curta."
	MsgCategoryRequired    = "Necessário uma categoria para o produto."
	MsgProviderIDRequired  = "Necessário um código de fornecedor."
	MsgProviderIDTooShort  = "Código de fornecedor muito pequeno."
)

const (
	minProductNameLength = 5
	minDescriptionLength = 20
	minProviderIDLength  = 5
)

func checkProductFields(name, description, category, providerID *string, create bool) []FieldError {
	var errs []FieldError

	switch {
	case name == nil:
		if create {
			errs = append(errs, fieldError(MsgProductNameRequired, "name"))
		}
	case len(*name) < minProductNameLength:
		errs = append(errs, fieldError(MsgProductNameTooShort, "name"))
	}

	if description != nil && len(*description) < minDescriptionLength {
		errs = append(errs, fieldError(MsgDescriptionTooShort, "description"))
	}

	if category == nil && create {
		errs = append(errs, fieldError(MsgCategoryRequired, "category"))
	}

	switch {
	case providerID == nil:
		if create {
			errs = append(errs, fieldError(MsgProviderIDRequired, "providerId"))
		}
	case len(*providerID) < minProviderIDLength:
		errs = append(errs, fieldError(MsgProviderIDTooShort, "providerId"))
	}

	return errs
}

// ValidateProductCreate checks a product creation payload.
func ValidateProductCreate(req *dto.ProductCreateRequest) (api.CreateProductInput, []FieldError) {
	errs := checkProductFields(req.Name, req.Description, req.Category, req.ProviderID, true)
	if errs != nil {
		return api.CreateProductInput{}, errs
	}

	return api.CreateProductInput{
		Name:        *req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    *req.Category,
		ProviderID:  *req.ProviderID,
	}, nil
}

// ValidateProductEdit checks a product edit payload; every field is
// optional but must be well-formed when present.
func ValidateProductEdit(req *dto.ProductEditRequest) (api.EditProductInput, []FieldError) {
	errs := checkProductFields(req.Name, req.Description, req.Category, req.ProviderID, false)
	if errs != nil {
		return api.EditProductInput{}, errs
	}

	return api.EditProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		ProviderID:  req.ProviderID,
	}, nil
}
