package validation

import (
	"supplyhub/internal/catalog/ports/api"
	"supplyhub/internal/server/http/dto"
)

// Client-facing validation messages.
const (
	MsgProviderNameRequired = "Necessário um nome para o fornecedor."
	MsgProviderNameTooShort = "Nome muito curto."
	MsgCountryCodeRequired  = "Necessário um código do país do fornecedor."
	MsgCountryCodeTooShort  = "Código muito curto."
	MsgInvalidCountryCode   = "Código invalido"
)

const (
	minProviderNameLength = 5
	// The registry only resolves ISO 3166-1 alpha-2/alpha-3 codes.
	minCountryCodeLength = 2
)

func checkProviderName(name string, required bool, present bool, errs []FieldError) []FieldError {
	if !present {
		if required {
			return append(errs, fieldError(MsgProviderNameRequired, "name"))
		}
		return errs
	}
	if len(name) < minProviderNameLength {
		return append(errs, fieldError(MsgProviderNameTooShort, "name"))
	}
	return errs
}

func checkCountryCode(code string, required bool, present bool, errs []FieldError) []FieldError {
	if !present {
		if required {
			return append(errs, fieldError(MsgCountryCodeRequired, "country_code"))
		}
		return errs
	}
	if len(code) < minCountryCodeLength {
		return append(errs, fieldError(MsgCountryCodeTooShort, "country_code"))
	}
	return errs
}

// ValidateProviderCreate checks a provider creation payload.
func ValidateProviderCreate(req *dto.ProviderCreateRequest) (api.CreateProviderInput, []FieldError) {
	var errs []FieldError

	errs = checkProviderName(deref(req.Name), true, req.Name != nil, errs)
	errs = checkCountryCode(deref(req.CountryCode), true, req.CountryCode != nil, errs)

	if errs != nil {
		return api.CreateProviderInput{}, errs
	}

	return api.CreateProviderInput{
		Name:        *req.Name,
		CountryCode: *req.CountryCode,
	}, nil
}

// ValidateProviderEdit checks a provider edit payload; every field is
// optional but must be well-formed when present.
func ValidateProviderEdit(req *dto.ProviderEditRequest) (api.EditProviderInput, []FieldError) {
	var errs []FieldError

	errs = checkProviderName(deref(req.Name), false, req.Name != nil, errs)
	errs = checkCountryCode(deref(req.CountryCode), false, req.CountryCode != nil, errs)

	if errs != nil {
		return api.EditProviderInput{}, errs
	}

	return api.EditProviderInput{
		Name:        req.Name,
		CountryCode: req.CountryCode,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
