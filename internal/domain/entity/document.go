package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem es una línea de un documento comercial (venta, compra, cotización...).
// Referencia al producto por id; el nombre se copia para que el documento quede
// legible aunque el producto cambie o desaparezca después.
type LineItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Total       decimal.Decimal `json:"total"` // cantidad * precio, sin impuesto
}

// Estados de pago de una venta.
const (
	SalePaid     = "paid"
	SalePending  = "pending"
	SalePartial  = "partial"
	SaleCanceled = "canceled"
)

// Sale representa una venta con sus líneas y totales agregados.
type Sale struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id,omitempty"`
	Items         []LineItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxTotal      decimal.Decimal `json:"tax_total"`
	Total         decimal.Decimal `json:"total"`
	PaymentStatus string          `json:"payment_status"` // paid, pending, partial, canceled
	PaymentMethod string          `json:"payment_method,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Estados de una compra.
const (
	PurchaseCompleted = "completed"
	PurchasePending   = "pending"
	PurchaseCanceled  = "canceled"
)

// Purchase representa una compra a proveedor.
type Purchase struct {
	ID         string          `json:"id"`
	SupplierID string          `json:"supplier_id,omitempty"`
	Items      []LineItem      `json:"items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxTotal   decimal.Decimal `json:"tax_total"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"` // completed, pending, canceled
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Estados de una orden de compra.
const (
	OrderPending  = "pending"
	OrderSent     = "sent"
	OrderReceived = "received"
	OrderCanceled = "canceled"
)

// PurchaseOrder representa una orden de compra aún no convertida en compra.
type PurchaseOrder struct {
	ID           string          `json:"id"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	Items        []LineItem      `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	TaxTotal     decimal.Decimal `json:"tax_total"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"` // pending, sent, received, canceled
	ExpectedDate *time.Time      `json:"expected_date,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Estados de una cotización.
const (
	QuotePending  = "pending"
	QuoteAccepted = "accepted"
	QuoteRejected = "rejected"
	QuoteExpired  = "expired"
)

// Quote representa una cotización con fecha de validez.
type Quote struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"client_id,omitempty"`
	Items      []LineItem      `json:"items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxTotal   decimal.Decimal `json:"tax_total"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"` // pending, accepted, rejected, expired
	ValidUntil time.Time       `json:"valid_until"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Estados de una nota de entrega.
const (
	DeliveryPending   = "pending"
	DeliveryDelivered = "delivered"
	DeliveryCanceled  = "canceled"
)

// DeliveryNote representa una nota de entrega asociada (por id) a una venta.
type DeliveryNote struct {
	ID          string     `json:"id"`
	ClientID    string     `json:"client_id,omitempty"`
	SaleID      string     `json:"sale_id,omitempty"`
	Items       []LineItem `json:"items"`
	Status      string     `json:"status"` // pending, delivered, canceled
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
