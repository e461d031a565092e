package repository

import "github.com/jhoicas/Empleados-api/internal/domain/entity"

// EmployeeListFilter filtros del listado paginado.
// Department filtra por igualdad exacta; Query hace substring case-insensitive
// sobre first_name, last_name y position (OR entre los tres).
type EmployeeListFilter struct {
	Department string
	Query      string
}

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// GetByID devuelve (nil, nil) cuando no hay coincidencia.
type EmployeeRepository interface {
	Create(emp *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	// List devuelve la página pedida ordenada por created_at DESC y el total
	// de registros que matchean el filtro (para calcular totalPages).
	List(filter EmployeeListFilter, limit, offset int) ([]*entity.Employee, int, error)
	Update(emp *entity.Employee) error
	// Delete devuelve domain.ErrNotFound si el id no existe.
	Delete(id string) error
	// Search filtra por department y/o position exactos, ordenado por
	// last_name y first_name ascendente. Sin paginación.
	Search(department, position string) ([]*entity.Employee, error)
}
