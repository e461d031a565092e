package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// AuthHandler maneja signup y login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Signup godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "username, email, password"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.ErrCodeValidation, Message: "cuerpo inválido"})
	}
	if len(in.Username) < 3 || len(in.Username) > 50 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.ErrCodeValidation, Message: "username debe tener entre 3 y 50 caracteres"})
	}
	if !domain.ValidEmail(in.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.ErrCodeValidation, Message: "email debe ser válido"})
	}
	if len(in.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.ErrCodeValidation, Message: "password debe tener al menos 6 caracteres"})
	}
	out, err := h.uc.Signup(in)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: dto.ErrCodeConflict, Message: "ya existe un usuario con ese email o username"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.ErrCodeValidation, Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.ErrCodeValidation, Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			// Mensaje único: no se distingue usuario inexistente de password incorrecto.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: dto.ErrCodeUnauthorized, Message: "credenciales inválidas"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

func internalError(c *fiber.Ctx, err error) error {
	// El detalle va al log; al cliente solo un mensaje genérico.
	log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: dto.ErrCodeInternal, Message: "error interno"})
}
