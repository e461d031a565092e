package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	EmployeeUC *usecase.EmployeeUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Employees (protegido: requiere Bearer Token)
	employees := api.Group("/employees", AuthMiddleware(deps.JWTSecret))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	// /search antes que /:id para que Fiber no lo capture como parámetro.
	employees.Get("/search", employeeHandler.Search)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Delete("/", employeeHandler.Delete)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Put)
	employees.Patch("/:id", employeeHandler.Patch)

	// Rutas no registradas -> 404 con el cuerpo {error, message} estándar.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error:   dto.ErrCodeNotFound,
			Message: "Route " + c.OriginalURL() + " not found",
		})
	})
}
