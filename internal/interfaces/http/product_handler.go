package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pyme-api/internal/application/dataservice"
	"github.com/jhoicas/pyme-api/internal/application/dto"
	"github.com/jhoicas/pyme-api/internal/application/events"
	"github.com/jhoicas/pyme-api/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	svc *dataservice.Service
	bus events.Bus
}

// NewProductHandler construye el handler.
func NewProductHandler(svc *dataservice.Service, bus events.Bus) *ProductHandler {
	return &ProductHandler{svc: svc, bus: bus}
}

// List devuelve todos los productos. Ante un backend caído responde lista vacía.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.svc.ListProducts())
}

// GetByID devuelve un producto o 404.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	p := h.svc.GetProduct(id)
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(p)
}

// Create da de alta un producto y emite products.updated.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in entity.Product
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	if in.Stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NEGATIVE_STOCK", Message: "el stock no puede ser negativo"})
	}
	out, err := h.svc.CreateProduct(&in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.bus.Publish(c.Context(), events.TopicProductsUpdated, out)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update reemplaza un producto existente y emite products.updated.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	current := h.svc.GetProduct(id)
	if current == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	in := *current
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = id
	in.CreatedAt = current.CreatedAt
	// El stock solo se muta por el rastreador (POST /products/:id/stock);
	// un PUT de producto no lo toca aunque el cuerpo lo traiga.
	in.Stock = current.Stock
	if err := h.svc.UpdateProduct(&in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.bus.Publish(c.Context(), events.TopicProductsUpdated, &in)
	return c.JSON(&in)
}

// Delete elimina un producto y emite products.updated.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if h.svc.GetProduct(id) == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	if err := h.svc.DeleteProduct(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.bus.Publish(c.Context(), events.TopicProductsUpdated, id)
	return c.SendStatus(fiber.StatusNoContent)
}
