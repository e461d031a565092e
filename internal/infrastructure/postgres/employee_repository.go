package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// position es palabra reservada en PostgreSQL, va siempre entre comillas.
const employeeColumns = `id, first_name, last_name, email, "position", department, salary, date_of_joining, profile_pic, created_at, updated_at`

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

// Create persiste un nuevo empleado. Mapea la violación de unicidad del email
// a domain.ErrDuplicateEmail.
func (r *EmployeeRepo) Create(emp *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.Position, emp.Department,
		emp.Salary, emp.DateOfJoining, emp.ProfilePic, emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID. (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	emp, err := r.scanOne(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by id: %w", err)
	}
	return emp, nil
}

// List devuelve la página pedida ordenada por created_at DESC y el total de
// registros que matchean el filtro. Department filtra exacto; Query hace
// substring case-insensitive sobre nombre, apellido y cargo.
func (r *EmployeeRepo) List(filter repository.EmployeeListFilter, limit, offset int) ([]*entity.Employee, int, error) {
	where := ""
	args := []any{}
	if filter.Department != "" {
		args = append(args, filter.Department)
		where += andWhere(where) + `department = $` + strconv.Itoa(len(args))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := strconv.Itoa(len(args))
		where += andWhere(where) + `(first_name ILIKE $` + n + ` OR last_name ILIKE $` + n + ` OR "position" ILIKE $` + n + `)`
	}

	ctx := context.Background()

	var total int
	countQuery := `SELECT COUNT(*) FROM employees` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	args = append(args, limit, offset)
	query := `SELECT ` + employeeColumns + ` FROM employees` + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	list, err := r.scanAll(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update reescribe la fila completa (PUT y PATCH resuelven el merge en el use case).
func (r *EmployeeRepo) Update(emp *entity.Employee) error {
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, email = $4, "position" = $5, department = $6,
		    salary = $7, date_of_joining = $8, profile_pic = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.Position, emp.Department,
		emp.Salary, emp.DateOfJoining, emp.ProfilePic, emp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina por ID. domain.ErrNotFound si ninguna fila fue afectada.
func (r *EmployeeRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search filtra por department y/o position exactos, ordenado por apellido y nombre.
func (r *EmployeeRepo) Search(department, position string) ([]*entity.Employee, error) {
	where := ""
	args := []any{}
	if department != "" {
		args = append(args, department)
		where += andWhere(where) + `department = $` + strconv.Itoa(len(args))
	}
	if position != "" {
		args = append(args, position)
		where += andWhere(where) + `"position" = $` + strconv.Itoa(len(args))
	}

	query := `SELECT ` + employeeColumns + ` FROM employees` + where + ` ORDER BY last_name ASC, first_name ASC`
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func andWhere(current string) string {
	if current == "" {
		return ` WHERE `
	}
	return ` AND `
}

func (r *EmployeeRepo) scanOne(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Position, &e.Department,
		&e.Salary, &e.DateOfJoining, &e.ProfilePic, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) scanAll(rows pgx.Rows) ([]*entity.Employee, error) {
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(
			&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Position, &e.Department,
			&e.Salary, &e.DateOfJoining, &e.ProfilePic, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
