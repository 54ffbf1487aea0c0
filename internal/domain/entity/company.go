package entity

import "time"

// CompanySettings es el registro único de configuración de la empresa.
// LowStockThreshold es el umbral global de stock bajo cuando el producto
// no define su propio ReorderLevel.
type CompanySettings struct {
	Name              string    `json:"name"`
	TaxID             string    `json:"tax_id,omitempty"`
	Address           string    `json:"address,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	Email             string    `json:"email,omitempty"`
	Currency          string    `json:"currency"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	UpdatedAt         time.Time `json:"updated_at"`
}
