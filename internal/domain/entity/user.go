package entity

import "time"

// User representa una cuenta del sistema. Solo se crea en el signup;
// no hay endpoints de actualización ni borrado de usuarios.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // hash bcrypt, nunca se expone en respuestas
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
