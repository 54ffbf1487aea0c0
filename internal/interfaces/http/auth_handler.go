package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pyme-api/internal/application/auth"
	"github.com/jhoicas/pyme-api/internal/application/dataservice"
	"github.com/jhoicas/pyme-api/internal/application/dto"
	"github.com/jhoicas/pyme-api/internal/domain"
)

// AuthHandler maneja login y la sesión actual.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	svc *dataservice.Service
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, svc *dataservice.Service) *AuthHandler {
	return &AuthHandler{uc: uc, svc: svc}
}

// Login verifica credenciales y devuelve token + usuario.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if err == domain.ErrUserNotFound || err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta inactiva"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Me devuelve el usuario autenticado según el token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := h.svc.GetUser(GetUserID(c))
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(auth.ToUserResponse(user))
}
