package validation

import (
	"regexp"
	"strings"

	"supplyhub/internal/server/http/dto"
)

// Client-facing validation messages.
const (
	MsgInvalidEmail = "E-mail invalido."
	MsgWeakPassword = "A senha deve ter pelo menos 8 caracteres e incluir pelo menos uma " +
		"letra maiúscula, uma letra minúscula, um número e um caractere especial."
)

const minPasswordLength = 8

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	upperRegex   = regexp.MustCompile(`[A-Z]`)
	lowerRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex   = regexp.MustCompile(`\d`)
	specialRegex = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
)

func validPassword(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}
	return upperRegex.MatchString(password) &&
		lowerRegex.MatchString(password) &&
		digitRegex.MatchString(password) &&
		specialRegex.MatchString(password)
}

// ValidateRegister checks the registration payload, returning the trimmed
// fields or the list of field errors.
func ValidateRegister(req *dto.RegisterRequest) (*dto.RegisterRequest, []FieldError) {
	var errs []FieldError

	email := strings.TrimSpace(req.Email)
	if !emailRegex.MatchString(email) {
		errs = append(errs, fieldError(MsgInvalidEmail, "email"))
	}

	if !validPassword(req.Password) {
		errs = append(errs, fieldError(MsgWeakPassword, "password"))
	}

	if errs != nil {
		return nil, errs
	}

	return &dto.RegisterRequest{
		Email:    email,
		Name:     strings.TrimSpace(req.Name),
		Password: req.Password,
	}, nil
}
