// Package validation checks request payload shape and produces
// field-level error lists that are forwarded verbatim to the client.
package validation

// FieldError describes one invalid field.
type FieldError struct {
	Message string   `json:"message"`
	Path    []string `json:"path"`
}

func fieldError(message string, path ...string) FieldError {
	return FieldError{Message: message, Path: path}
}
