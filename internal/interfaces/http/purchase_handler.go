package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pyme-api/internal/application/dataservice"
	"github.com/jhoicas/pyme-api/internal/application/dto"
	"github.com/jhoicas/pyme-api/internal/application/sales"
	"github.com/jhoicas/pyme-api/internal/domain"
	"github.com/jhoicas/pyme-api/internal/domain/entity"
)

// PurchaseHandler maneja compras a proveedor. Una compra completada ingresa
// stock vía el caso de uso.
type PurchaseHandler struct {
	svc *dataservice.Service
	uc  *sales.PurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(svc *dataservice.Service, uc *sales.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{svc: svc, uc: uc}
}

func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.svc.ListPurchases())
}

func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	p := h.svc.GetPurchase(c.Params("id"))
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "compra no encontrada"})
	}
	return c.JSON(p)
}

func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in entity.Purchase
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreatePurchase(c.Context(), &in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la compra requiere al menos una línea válida"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto de la compra no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *PurchaseHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	current := h.svc.GetPurchase(id)
	if current == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "compra no encontrada"})
	}
	in := *current
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = id
	in.CreatedAt = current.CreatedAt
	if err := h.svc.UpdatePurchase(&in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(&in)
}

func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if h.svc.GetPurchase(id) == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "compra no encontrada"})
	}
	if err := h.svc.DeletePurchase(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PurchaseOrderHandler CRUD de órdenes de compra (sin efecto sobre stock).
type PurchaseOrderHandler struct {
	svc *dataservice.Service
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(svc *dataservice.Service) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{svc: svc}
}

func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.svc.ListPurchaseOrders())
}

func (h *PurchaseOrderHandler) GetByID(c *fiber.Ctx) error {
	o := h.svc.GetPurchaseOrder(c.Params("id"))
	if o == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de compra no encontrada"})
	}
	return c.JSON(o)
}

func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in entity.PurchaseOrder
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SupplierID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "supplier_id es requerido"})
	}
	out, err := h.svc.CreatePurchaseOrder(&in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *PurchaseOrderHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	current := h.svc.GetPurchaseOrder(id)
	if current == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de compra no encontrada"})
	}
	in := *current
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = id
	in.CreatedAt = current.CreatedAt
	if err := h.svc.UpdatePurchaseOrder(&in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(&in)
}

func (h *PurchaseOrderHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if h.svc.GetPurchaseOrder(id) == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de compra no encontrada"})
	}
	if err := h.svc.DeletePurchaseOrder(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
