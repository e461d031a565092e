package repository

import "github.com/jhoicas/Empleados-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Find* devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	FindByEmailOrUsername(email, username string) (*entity.User, error)
}
