package dto

// UpdateStockRequest fija el stock de un producto con su origen.
type UpdateStockRequest struct {
	Stock  int    `json:"stock"`
	Source string `json:"source"` // sale, purchase, manual, return; vacío = manual
}

// StockUpdateResponse resultado de una mutación de stock.
type StockUpdateResponse struct {
	OK bool `json:"ok"`
}
