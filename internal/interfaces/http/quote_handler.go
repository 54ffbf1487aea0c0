package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pyme-api/internal/application/dataservice"
	"github.com/jhoicas/pyme-api/internal/application/dto"
	"github.com/jhoicas/pyme-api/internal/domain/entity"
)

// QuoteHandler CRUD de cotizaciones. Las cotizaciones nunca mueven stock.
type QuoteHandler struct {
	svc *dataservice.Service
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(svc *dataservice.Service) *QuoteHandler {
	return &QuoteHandler{svc: svc}
}

func (h *QuoteHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.svc.ListQuotes())
}

func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	q := h.svc.GetQuote(c.Params("id"))
	if q == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
	}
	return c.JSON(q)
}

func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in entity.Quote
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la cotización requiere al menos una línea"})
	}
	out, err := h.svc.CreateQuote(&in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	current := h.svc.GetQuote(id)
	if current == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
	}
	in := *current
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = id
	in.CreatedAt = current.CreatedAt
	if err := h.svc.UpdateQuote(&in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(&in)
}

func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if h.svc.GetQuote(id) == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
	}
	if err := h.svc.DeleteQuote(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeliveryNoteHandler CRUD de remisiones de entrega asociadas a ventas.
type DeliveryNoteHandler struct {
	svc *dataservice.Service
}

// NewDeliveryNoteHandler construye el handler.
func NewDeliveryNoteHandler(svc *dataservice.Service) *DeliveryNoteHandler {
	return &DeliveryNoteHandler{svc: svc}
}

func (h *DeliveryNoteHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.svc.ListDeliveryNotes())
}

func (h *DeliveryNoteHandler) GetByID(c *fiber.Ctx) error {
	n := h.svc.GetDeliveryNote(c.Params("id"))
	if n == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "remisión no encontrada"})
	}
	return c.JSON(n)
}

func (h *DeliveryNoteHandler) Create(c *fiber.Ctx) error {
	var in entity.DeliveryNote
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SaleID != "" && h.svc.GetSale(in.SaleID) == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la venta asociada no existe"})
	}
	out, err := h.svc.CreateDeliveryNote(&in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *DeliveryNoteHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	current := h.svc.GetDeliveryNote(id)
	if current == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "remisión no encontrada"})
	}
	in := *current
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = id
	in.CreatedAt = current.CreatedAt
	if err := h.svc.UpdateDeliveryNote(&in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(&in)
}

func (h *DeliveryNoteHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if h.svc.GetDeliveryNote(id) == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "remisión no encontrada"})
	}
	if err := h.svc.DeleteDeliveryNote(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
