package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pyme-api/internal/application/dataservice"
	"github.com/jhoicas/pyme-api/internal/application/dto"
	"github.com/jhoicas/pyme-api/internal/application/events"
)

// SettingsHandler lectura y actualización de la configuración de la empresa.
type SettingsHandler struct {
	svc *dataservice.Service
	bus events.Bus
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(svc *dataservice.Service, bus events.Bus) *SettingsHandler {
	return &SettingsHandler{svc: svc, bus: bus}
}

// Get devuelve la configuración vigente (nunca nula, hay defaults sembrados).
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.svc.Settings())
}

// Update reemplaza la configuración y emite company_settings.changed.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	current := h.svc.Settings()
	in := *current
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.LowStockThreshold < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "low_stock_threshold no puede ser negativo"})
	}
	if err := h.svc.SaveSettings(&in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.bus.Publish(c.Context(), events.TopicCompanySettingsChanged, &in)
	return c.JSON(&in)
}
