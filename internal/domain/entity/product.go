package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock es el único campo autoritativo de existencias: toda mutación pasa por el
// rastreador de stock, nunca por escritura directa del campo.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Barcode       string          `json:"barcode,omitempty"`
	Category      string          `json:"category,omitempty"`
	SupplierID    string          `json:"supplier_id,omitempty"`
	Description   string          `json:"description,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	TaxRate       decimal.Decimal `json:"tax_rate"` // IVA: 0, 0.05, 0.19...
	Stock         int             `json:"stock"`
	ReorderLevel  *int            `json:"reorder_level,omitempty"` // nil = usar umbral global
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Threshold devuelve el umbral de reposición del producto, o fallback si no define uno.
func (p *Product) Threshold(fallback int) int {
	if p.ReorderLevel != nil {
		return *p.ReorderLevel
	}
	return fallback
}
