package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa un empleado del directorio. No tiene relación con User:
// cualquier usuario autenticado puede operar sobre cualquier empleado.
type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string // único, se guarda en minúsculas
	Position      string
	Department    string
	Salary        decimal.Decimal // NUMERIC en DB, nunca negativo
	DateOfJoining time.Time       // solo fecha, sin hora
	ProfilePic    *string         // ruta relativa bajo /uploads, nil si no hay foto
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
