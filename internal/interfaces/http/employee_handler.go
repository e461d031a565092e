package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

// EmployeeHandler maneja las peticiones HTTP del directorio de empleados (protegido).
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado (multipart admite profilePic)"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.ErrCodeValidation, Message: "cuerpo inválido"})
	}
	file, closeFile, err := profilePicUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.ErrCodeValidation, Message: "profilePic inválido"})
	}
	defer closeFile()

	out, err := h.uc.Create(c.UserContext(), in, file)
	if err != nil {
		return mapEmployeeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar empleados (paginado, filtro por dept y texto libre)
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        dept   query  string  false  "Departamento (igualdad exacta)"
// @Param        q      query  string  false  "Texto libre sobre nombre, apellido y cargo"
// @Param        page   query  int     false  "Página"  default(1)
// @Param        limit  query  int     false  "Tamaño"  default(10)
// @Success      200    {object}  dto.EmployeeListResponse
// @Router       /api/v1/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	filter := repository.EmployeeListFilter{
		Department: c.Query("dept"),
		Query:      c.Query("q"),
	}
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	out, err := h.uc.List(filter, page, limit)
	if err != nil {
		return mapEmployeeError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar empleados por departamento y/o cargo exactos
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        department  query  string  false  "Departamento exacto"
// @Param        position    query  string  false  "Cargo exacto"
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/v1/employees/search [get]
func (h *EmployeeHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("department"), c.Query("position"))
	if err != nil {
		return mapEmployeeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener empleado por ID
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del empleado (UUID)"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapEmployeeError(c, err)
	}
	return c.JSON(out)
}

// Put godoc
// @Summary      Reemplazar empleado (todos los campos requeridos)
// @Tags         employees
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        id    path  string  true  "ID del empleado (UUID)"
// @Param        body  body  dto.CreateEmployeeRequest  true  "Registro completo"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/employees/{id} [put]
func (h *EmployeeHandler) Put(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.ErrCodeValidation, Message: "cuerpo inválido"})
	}
	file, closeFile, err := profilePicUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.ErrCodeValidation, Message: "profilePic inválido"})
	}
	defer closeFile()

	out, err := h.uc.Replace(c.UserContext(), c.Params("id"), in, file)
	if err != nil {
		return mapEmployeeError(c, err)
	}
	return c.JSON(out)
}

// Patch godoc
// @Summary      Actualizar empleado (solo campos presentes)
// @Tags         employees
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        id    path  string  true  "ID del empleado (UUID)"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/employees/{id} [patch]
func (h *EmployeeHandler) Patch(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.ErrCodeValidation, Message: "cuerpo inválido"})
	}
	file, closeFile, err := profilePicUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.ErrCodeValidation, Message: "profilePic inválido"})
	}
	defer closeFile()

	out, err := h.uc.Patch(c.UserContext(), c.Params("id"), in, file)
	if err != nil {
		return mapEmployeeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empleado por query ?eid=
// @Tags         employees
// @Security     Bearer
// @Param        eid  query  string  true  "ID del empleado (UUID)"
// @Success      204  "sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/employees [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Query("eid")); err != nil {
		return mapEmployeeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// profilePicUpload extrae la foto adjunta del multipart si existe.
// Devuelve (nil, noop, nil) en requests JSON o multipart sin archivo.
func profilePicUpload(c *fiber.Ctx) (*dto.FileUpload, func(), error) {
	noop := func() {}
	fh, err := c.FormFile("profilePic")
	if err != nil || fh == nil {
		// Sin archivo: no es un error, la foto es opcional.
		return nil, noop, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}
	return &dto.FileUpload{Filename: fh.Filename, Size: fh.Size, Reader: f}, func() { f.Close() }, nil
}

// mapEmployeeError traduce errores de dominio a la respuesta HTTP {error, message}.
func mapEmployeeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.ErrCodeInvalidID, Message: "el id debe ser un UUID válido"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.ErrCodeValidation, Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: dto.ErrCodeNotFound, Message: "empleado no encontrado"})
	case errors.Is(err, domain.ErrDuplicateEmail):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: dto.ErrCodeConflict, Message: "ya existe un empleado con ese email"})
	default:
		return internalError(c, err)
	}
}
