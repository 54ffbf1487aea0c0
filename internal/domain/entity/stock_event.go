package entity

import "time"

// Origen de un cambio de stock.
const (
	StockSourceSale     = "sale"
	StockSourcePurchase = "purchase"
	StockSourceManual   = "manual"
	StockSourceReturn   = "return"
)

// StockChangeEvent es un registro de auditoría de una mutación de stock.
// Vive solo en memoria durante el proceso; no se persiste entre reinicios.
type StockChangeEvent struct {
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name"`
	PreviousStock int       `json:"previous_stock"`
	NewStock      int       `json:"new_stock"`
	Source        string    `json:"source"` // sale, purchase, manual, return
	At            time.Time `json:"at"`
}
