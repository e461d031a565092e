package http_test

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Empleados-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia y del file store.
// Replican la semántica del adaptador PostgreSQL (unicidad, orden, paginación).
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*entity.User
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return domain.ErrUserAlreadyExists
		}
	}
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmailOrUsername(email, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email || u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees []*entity.Employee
	failWith  error // si no es nil, toda operación falla con este error
}

func (r *fakeEmployeeRepo) Create(emp *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	for _, e := range r.employees {
		if e.Email == emp.Email {
			return domain.ErrDuplicateEmail
		}
	}
	cp := *emp
	r.employees = append(r.employees, &cp)
	return nil
}

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, e := range r.employees {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) List(filter repository.EmployeeListFilter, limit, offset int) ([]*entity.Employee, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, 0, r.failWith
	}
	var matched []*entity.Employee
	for _, e := range r.employees {
		if filter.Department != "" && e.Department != filter.Department {
			continue
		}
		if filter.Query != "" && !containsFold(e.FirstName, filter.Query) &&
			!containsFold(e.LastName, filter.Query) && !containsFold(e.Position, filter.Query) {
			continue
		}
		matched = append(matched, e)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := len(matched)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := make([]*entity.Employee, 0, end-offset)
	for _, e := range matched[offset:end] {
		cp := *e
		page = append(page, &cp)
	}
	return page, total, nil
}

func (r *fakeEmployeeRepo) Update(emp *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	for _, e := range r.employees {
		if e.ID != emp.ID && e.Email == emp.Email {
			return domain.ErrDuplicateEmail
		}
	}
	for i, e := range r.employees {
		if e.ID == emp.ID {
			cp := *emp
			r.employees[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeEmployeeRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	for i, e := range r.employees {
		if e.ID == id {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeEmployeeRepo) Search(department, position string) ([]*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	var matched []*entity.Employee
	for _, e := range r.employees {
		if department != "" && e.Department != department {
			continue
		}
		if position != "" && e.Position != position {
			continue
		}
		cp := *e
		matched = append(matched, &cp)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].LastName != matched[j].LastName {
			return matched[i].LastName < matched[j].LastName
		}
		return matched[i].FirstName < matched[j].FirstName
	})
	return matched, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

type fakeFileStore struct {
	mu    sync.Mutex
	saved []string
}

func (s *fakeFileStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.Copy(io.Discard, content); err != nil {
		return "", err
	}
	ref := fmt.Sprintf("/uploads/fake-%d-%s", len(s.saved), filename)
	s.saved = append(s.saved, ref)
	return ref, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de prueba con el router real y los fakes.
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app       *fiber.App
	userRepo  *fakeUserRepo
	empRepo   *fakeEmployeeRepo
	fileStore *fakeFileStore
}

func newTestEnv() *testEnv {
	userRepo := &fakeUserRepo{}
	empRepo := &fakeEmployeeRepo{}
	fileStore := &fakeFileStore{}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
		BcryptCost: 4, // mínimo permitido por bcrypt, suficiente en tests
	})
	employeeUC := usecase.NewEmployeeUseCase(empRepo, fileStore)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		EmployeeUC: employeeUC,
		JWTSecret:  testJWTSecret,
	})

	return &testEnv{app: app, userRepo: userRepo, empRepo: empRepo, fileStore: fileStore}
}
