package domain

import (
	"fmt"
	"regexp"
)

// emailRx sintaxis mínima usuario@dominio.tld; la unicidad la garantiza la DB.
var emailRx = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidEmail verifica la sintaxis de un email.
func ValidEmail(s string) bool {
	return emailRx.MatchString(s)
}

// ValidationError error de validación con el campo afectado. Envuelve
// ErrInvalidInput para que los handlers lo detecten con errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError construye un error de validación para un campo.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
