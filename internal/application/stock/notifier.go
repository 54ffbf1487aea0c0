package stock

import "github.com/jhoicas/pyme-api/internal/domain/entity"

// Notifier recibe los avisos de cara al usuario que genera el rastreador:
// stock bajo y fallos de mutación. La implementación decide el medio
// (log estructurado, campana de terminal, webhook...).
type Notifier interface {
	LowStock(p *entity.Product, newStock, threshold int)
	OperationFailed(productID, reason string)
}

// NopNotifier descarta todos los avisos (útil en tests).
type NopNotifier struct{}

func (NopNotifier) LowStock(*entity.Product, int, int) {}
func (NopNotifier) OperationFailed(string, string)     {}
