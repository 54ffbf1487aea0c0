package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pyme-api/internal/application/dataservice"
	"github.com/jhoicas/pyme-api/internal/application/dto"
	"github.com/jhoicas/pyme-api/internal/application/stock"
	"github.com/jhoicas/pyme-api/internal/domain/entity"
)

// StockHandler expone la mutación de existencias y su historial de auditoría.
type StockHandler struct {
	svc     *dataservice.Service
	tracker *stock.Tracker
}

// NewStockHandler construye el handler.
func NewStockHandler(svc *dataservice.Service, tracker *stock.Tracker) *StockHandler {
	return &StockHandler{svc: svc, tracker: tracker}
}

// UpdateStock fija el stock absoluto de un producto con un origen etiquetado.
func (h *StockHandler) UpdateStock(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NEGATIVE_STOCK", Message: "el stock no puede ser negativo"})
	}
	source := in.Source
	if source == "" {
		source = entity.StockSourceManual
	}
	switch source {
	case entity.StockSourceSale, entity.StockSourcePurchase, entity.StockSourceManual, entity.StockSourceReturn:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "source desconocido"})
	}
	if h.svc.GetProduct(id) == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	if !h.tracker.UpdateProductStock(c.Context(), id, in.Stock, source) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo actualizar el stock"})
	}
	return c.JSON(dto.StockUpdateResponse{OK: true})
}

// History devuelve el historial completo de cambios (más antiguo primero).
func (h *StockHandler) History(c *fiber.Ctx) error {
	return c.JSON(h.tracker.History())
}

// ProductHistory devuelve los cambios de un producto concreto.
func (h *StockHandler) ProductHistory(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	return c.JSON(h.tracker.ProductHistory(id))
}
