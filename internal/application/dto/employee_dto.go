package dto

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest entrada para crear o reemplazar (PUT) un empleado.
// Llega como JSON o como campos de un multipart/form-data (tags form).
// Salary es puntero para distinguir "ausente" de 0; DateOfJoining se parsea
// en el use case (YYYY-MM-DD o RFC3339).
type CreateEmployeeRequest struct {
	FirstName     string           `json:"firstName" form:"firstName"`
	LastName      string           `json:"lastName" form:"lastName"`
	Email         string           `json:"email" form:"email"`
	Position      string           `json:"position" form:"position"`
	Department    string           `json:"department" form:"department"`
	Salary        *decimal.Decimal `json:"salary" form:"salary"`
	DateOfJoining string           `json:"dateOfJoining" form:"dateOfJoining"`
}

// UpdateEmployeeRequest entrada para PATCH: solo los campos presentes se aplican.
type UpdateEmployeeRequest struct {
	FirstName     *string          `json:"firstName" form:"firstName"`
	LastName      *string          `json:"lastName" form:"lastName"`
	Email         *string          `json:"email" form:"email"`
	Position      *string          `json:"position" form:"position"`
	Department    *string          `json:"department" form:"department"`
	Salary        *decimal.Decimal `json:"salary" form:"salary"`
	DateOfJoining *string          `json:"dateOfJoining" form:"dateOfJoining"`
}

// FileUpload foto de perfil recibida en el multipart. Nil cuando no se adjuntó.
type FileUpload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID            string          `json:"id"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	Email         string          `json:"email"`
	Position      string          `json:"position"`
	Department    string          `json:"department"`
	Salary        decimal.Decimal `json:"salary"`
	DateOfJoining string          `json:"dateOfJoining"` // YYYY-MM-DD
	ProfilePic    *string         `json:"profilePic"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// EmployeeListResponse página del listado: data + metadatos de paginación.
type EmployeeListResponse struct {
	Data       []EmployeeResponse `json:"data"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Total      int                `json:"total"`
	TotalPages int                `json:"totalPages"`
}
