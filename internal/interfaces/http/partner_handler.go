package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pyme-api/internal/application/dataservice"
	"github.com/jhoicas/pyme-api/internal/application/dto"
	"github.com/jhoicas/pyme-api/internal/application/events"
	"github.com/jhoicas/pyme-api/internal/domain/entity"
)

// ClientHandler CRUD de clientes.
type ClientHandler struct {
	svc *dataservice.Service
	bus events.Bus
}

// NewClientHandler construye el handler.
func NewClientHandler(svc *dataservice.Service, bus events.Bus) *ClientHandler {
	return &ClientHandler{svc: svc, bus: bus}
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.svc.ListClients())
}

func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	client := h.svc.GetClient(c.Params("id"))
	if client == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(client)
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in entity.Client
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.svc.CreateClient(&in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.bus.Publish(c.Context(), events.TopicClientsChanged, out)
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	current := h.svc.GetClient(id)
	if current == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	in := *current
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = id
	in.CreatedAt = current.CreatedAt
	if err := h.svc.UpdateClient(&in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.bus.Publish(c.Context(), events.TopicClientsChanged, &in)
	return c.JSON(&in)
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if h.svc.GetClient(id) == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	if err := h.svc.DeleteClient(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.bus.Publish(c.Context(), events.TopicClientsChanged, id)
	return c.SendStatus(fiber.StatusNoContent)
}

// SupplierHandler CRUD de proveedores.
type SupplierHandler struct {
	svc *dataservice.Service
	bus events.Bus
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(svc *dataservice.Service, bus events.Bus) *SupplierHandler {
	return &SupplierHandler{svc: svc, bus: bus}
}

func (h *SupplierHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.svc.ListSuppliers())
}

func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	s := h.svc.GetSupplier(c.Params("id"))
	if s == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	return c.JSON(s)
}

func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in entity.Supplier
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.svc.CreateSupplier(&in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.bus.Publish(c.Context(), events.TopicSuppliersUpdated, out)
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	current := h.svc.GetSupplier(id)
	if current == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	in := *current
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = id
	in.CreatedAt = current.CreatedAt
	if err := h.svc.UpdateSupplier(&in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.bus.Publish(c.Context(), events.TopicSuppliersUpdated, &in)
	return c.JSON(&in)
}

func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if h.svc.GetSupplier(id) == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	if err := h.svc.DeleteSupplier(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.bus.Publish(c.Context(), events.TopicSuppliersUpdated, id)
	return c.SendStatus(fiber.StatusNoContent)
}
