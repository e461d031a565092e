package dto

// ErrorResponse cuerpo de error HTTP: {error, message}.
// Error es el nombre de la categoría (ValidationError, Unauthorized, Conflict,
// InvalidId, NotFound, Internal) y Message el detalle para el cliente.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Categorías de error expuestas por la API.
const (
	ErrCodeValidation   = "ValidationError"
	ErrCodeUnauthorized = "Unauthorized"
	ErrCodeConflict     = "Conflict"
	ErrCodeInvalidID    = "InvalidId"
	ErrCodeNotFound     = "NotFound"
	ErrCodeInternal     = "Internal"
)
