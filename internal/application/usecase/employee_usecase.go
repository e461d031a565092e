package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/ports"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

const maxNameLen = 100

// EmployeeUseCase casos de uso CRUD y búsqueda sobre el directorio de empleados.
// La foto de perfil se delega al FileStore y solo se persiste su referencia.
type EmployeeUseCase struct {
	repo  repository.EmployeeRepository
	files ports.FileStore
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, files ports.FileStore) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, files: files}
}

// Create valida los campos requeridos, guarda la foto si viene adjunta y persiste.
// Devuelve ValidationError en campos faltantes o malformados y
// domain.ErrDuplicateEmail si el email ya existe.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest, file *dto.FileUpload) (*dto.EmployeeResponse, error) {
	emp, err := uc.buildEmployee(in)
	if err != nil {
		return nil, err
	}
	if file != nil {
		ref, err := uc.files.Save(ctx, file.Filename, file.Reader)
		if err != nil {
			return nil, err
		}
		emp.ProfilePic = &ref
	}
	if err := uc.repo.Create(emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// List devuelve la página pedida, ordenada por fecha de creación descendente.
// page y limit por defecto 1/10 y nunca menores a 1; totalPages = ceil(total/limit).
func (uc *EmployeeUseCase) List(filter repository.EmployeeListFilter, page, limit int) (*dto.EmployeeListResponse, error) {
	if page < 1 {
		page = 1
	}
	// 0 significa "no enviado": aplica el default; un valor negativo se corrige a 1.
	if limit == 0 {
		limit = 10
	} else if limit < 0 {
		limit = 1
	}
	offset := (page - 1) * limit

	items, total, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}

	data := make([]dto.EmployeeResponse, 0, len(items))
	for _, emp := range items {
		data = append(data, *toEmployeeResponse(emp))
	}
	return &dto.EmployeeListResponse{
		Data:       data,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// GetByID obtiene un empleado. ErrInvalidID si el id no es un UUID,
// ErrNotFound si no existe.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(emp), nil
}

// Replace reemplaza el registro completo (PUT): todos los campos requeridos deben
// venir. La foto previa se descarta salvo que el request adjunte una nueva;
// created_at se conserva.
func (uc *EmployeeUseCase) Replace(ctx context.Context, id string, in dto.CreateEmployeeRequest, file *dto.FileUpload) (*dto.EmployeeResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	emp, err := uc.buildEmployee(in)
	if err != nil {
		return nil, err
	}
	emp.ID = current.ID
	emp.CreatedAt = current.CreatedAt
	if file != nil {
		ref, err := uc.files.Save(ctx, file.Filename, file.Reader)
		if err != nil {
			return nil, err
		}
		emp.ProfilePic = &ref
	}
	if err := uc.repo.Update(emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// Patch aplica solo los campos presentes (merge). La foto solo cambia si el
// request adjunta una nueva.
func (uc *EmployeeUseCase) Patch(ctx context.Context, id string, in dto.UpdateEmployeeRequest, file *dto.FileUpload) (*dto.EmployeeResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}

	if in.FirstName != nil {
		v := strings.TrimSpace(*in.FirstName)
		if err := requireName("firstName", v); err != nil {
			return nil, err
		}
		emp.FirstName = v
	}
	if in.LastName != nil {
		v := strings.TrimSpace(*in.LastName)
		if err := requireName("lastName", v); err != nil {
			return nil, err
		}
		emp.LastName = v
	}
	if in.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*in.Email))
		if !domain.ValidEmail(v) {
			return nil, domain.NewValidationError("email", "debe ser un email válido")
		}
		emp.Email = v
	}
	if in.Position != nil {
		v := strings.TrimSpace(*in.Position)
		if err := requireName("position", v); err != nil {
			return nil, err
		}
		emp.Position = v
	}
	if in.Department != nil {
		v := strings.TrimSpace(*in.Department)
		if err := requireName("department", v); err != nil {
			return nil, err
		}
		emp.Department = v
	}
	if in.Salary != nil {
		if in.Salary.IsNegative() {
			return nil, domain.NewValidationError("salary", "no puede ser negativo")
		}
		emp.Salary = *in.Salary
	}
	if in.DateOfJoining != nil {
		d, err := parseDate(*in.DateOfJoining)
		if err != nil {
			return nil, err
		}
		emp.DateOfJoining = d
	}
	if file != nil {
		ref, err := uc.files.Save(ctx, file.Filename, file.Reader)
		if err != nil {
			return nil, err
		}
		emp.ProfilePic = &ref
	}

	emp.UpdatedAt = time.Now()
	if err := uc.repo.Update(emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// Delete elimina por id. ErrInvalidID si el id no es un UUID, ErrNotFound si no existe.
func (uc *EmployeeUseCase) Delete(id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// Search filtra por department y/o position exactos, ordenado por apellido y nombre.
func (uc *EmployeeUseCase) Search(department, position string) ([]dto.EmployeeResponse, error) {
	items, err := uc.repo.Search(department, position)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(items))
	for _, emp := range items {
		out = append(out, *toEmployeeResponse(emp))
	}
	return out, nil
}

// buildEmployee valida el set completo de campos requeridos y construye la entidad.
func (uc *EmployeeUseCase) buildEmployee(in dto.CreateEmployeeRequest) (*entity.Employee, error) {
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	position := strings.TrimSpace(in.Position)
	department := strings.TrimSpace(in.Department)

	if err := requireName("firstName", firstName); err != nil {
		return nil, err
	}
	if err := requireName("lastName", lastName); err != nil {
		return nil, err
	}
	if !domain.ValidEmail(email) {
		return nil, domain.NewValidationError("email", "debe ser un email válido")
	}
	if err := requireName("position", position); err != nil {
		return nil, err
	}
	if err := requireName("department", department); err != nil {
		return nil, err
	}
	if in.Salary == nil {
		return nil, domain.NewValidationError("salary", "es requerido y debe ser numérico")
	}
	if in.Salary.IsNegative() {
		return nil, domain.NewValidationError("salary", "no puede ser negativo")
	}
	if strings.TrimSpace(in.DateOfJoining) == "" {
		return nil, domain.NewValidationError("dateOfJoining", "es requerido")
	}
	date, err := parseDate(in.DateOfJoining)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &entity.Employee{
		ID:            uuid.New().String(),
		FirstName:     firstName,
		LastName:      lastName,
		Email:         email,
		Position:      position,
		Department:    department,
		Salary:        *in.Salary,
		DateOfJoining: date,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func requireName(field, value string) error {
	if value == "" {
		return domain.NewValidationError(field, "es requerido")
	}
	if len(value) > maxNameLen {
		return domain.NewValidationError(field, "no puede superar 100 caracteres")
	}
	return nil
}

// parseDate acepta YYYY-MM-DD o RFC3339 y descarta la parte horaria.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, domain.NewValidationError("dateOfJoining", "debe ser una fecha ISO (YYYY-MM-DD)")
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	return nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		Position:      e.Position,
		Department:    e.Department,
		Salary:        e.Salary,
		DateOfJoining: e.DateOfJoining.Format("2006-01-02"),
		ProfilePic:    e.ProfilePic,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
