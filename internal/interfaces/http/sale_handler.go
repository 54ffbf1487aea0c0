package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pyme-api/internal/application/dataservice"
	"github.com/jhoicas/pyme-api/internal/application/dto"
	"github.com/jhoicas/pyme-api/internal/application/sales"
	"github.com/jhoicas/pyme-api/internal/domain"
	"github.com/jhoicas/pyme-api/internal/domain/entity"
)

// SaleHandler maneja ventas. El alta y la eliminación pasan por el caso de uso
// para que el stock acompañe al documento.
type SaleHandler struct {
	svc *dataservice.Service
	uc  *sales.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(svc *dataservice.Service, uc *sales.SaleUseCase) *SaleHandler {
	return &SaleHandler{svc: svc, uc: uc}
}

func (h *SaleHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.svc.ListSales())
}

func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale := h.svc.GetSale(c.Params("id"))
	if sale == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(sale)
}

// Create registra la venta y descuenta el stock de cada línea.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in entity.Sale
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateSale(c.Context(), &in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la venta requiere al menos una línea válida"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto de la venta no encontrado"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la venta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update modifica campos del documento sin tocar stock (estado de pago, notas).
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	current := h.svc.GetSale(id)
	if current == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	in := *current
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = id
	in.CreatedAt = current.CreatedAt
	if err := h.svc.UpdateSale(&in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(&in)
}

// Delete restaura el stock de las líneas y elimina la venta.
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteSale(c.Context(), c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
