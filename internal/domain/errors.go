package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserAlreadyExists = errors.New("el email o username ya está registrado")
	ErrDuplicateEmail    = errors.New("el email ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidID         = errors.New("identificador inválido")
	ErrUnauthorized      = errors.New("no autorizado")
)
