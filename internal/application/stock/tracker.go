package stock

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/pyme-api/internal/application/dataservice"
	"github.com/jhoicas/pyme-api/internal/application/events"
	"github.com/jhoicas/pyme-api/internal/domain/entity"
	"github.com/jhoicas/pyme-api/pkg/logger"
)

// StockChangedPayload es el detalle publicado en events.TopicProductStockChanged.
type StockChangedPayload struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	PreviousStock int    `json:"previous_stock"`
	NewStock      int    `json:"new_stock"`
	Source        string `json:"source"`
}

// Tracker es el único punto por el que se muta el stock de un producto.
// Cada mutación se persiste, se registra en la auditoría en memoria y se
// difunde por el bus de eventos. La auditoría es un buffer circular acotado
// que no sobrevive al proceso.
type Tracker struct {
	svc      *dataservice.Service
	bus      events.Bus
	notifier Notifier
	log      *logger.Logger

	mu      sync.Mutex
	history *ring
}

// NewTracker construye el rastreador. historySize acota la auditoría en memoria.
func NewTracker(svc *dataservice.Service, bus events.Bus, notifier Notifier, log *logger.Logger, historySize int) *Tracker {
	return &Tracker{
		svc:      svc,
		bus:      bus,
		notifier: notifier,
		log:      log,
		history:  newRing(historySize),
	}
}

// UpdateProductStock fija el stock de un producto en newStock y registra el
// cambio con su origen (sale, purchase, manual, return).
//
// Devuelve false, sin lanzar nada, ante cualquier fallo: producto inexistente,
// stock negativo o error de persistencia; el fallo se avisa por el Notifier.
func (t *Tracker) UpdateProductStock(ctx context.Context, productID string, newStock int, source string) bool {
	if newStock < 0 {
		t.notifier.OperationFailed(productID, "el stock no puede ser negativo")
		return false
	}

	p := t.svc.GetProduct(productID)
	if p == nil {
		t.notifier.OperationFailed(productID, "producto no encontrado")
		return false
	}

	previous := p.Stock
	p.Stock = newStock
	if err := t.svc.UpdateProduct(p); err != nil {
		t.log.Error().Err(err).Str("product_id", productID).Msg("persistir cambio de stock")
		t.notifier.OperationFailed(productID, "no se pudo guardar el cambio de stock")
		return false
	}

	ev := entity.StockChangeEvent{
		ProductID:     p.ID,
		ProductName:   p.Name,
		PreviousStock: previous,
		NewStock:      newStock,
		Source:        source,
		At:            time.Now(),
	}
	t.mu.Lock()
	t.history.push(ev)
	t.mu.Unlock()

	t.log.Debug().
		Str("product_id", p.ID).
		Int("previous", previous).
		Int("new", newStock).
		Str("source", source).
		Msg("stock actualizado")

	// Umbral del producto, o el global de la configuración de empresa.
	threshold := p.Threshold(t.svc.Settings().LowStockThreshold)
	if newStock <= threshold {
		t.notifier.LowStock(p, newStock, threshold)
	}

	t.bus.Publish(ctx, events.TopicProductStockChanged, StockChangedPayload{
		ProductID:     p.ID,
		ProductName:   p.Name,
		PreviousStock: previous,
		NewStock:      newStock,
		Source:        source,
	})
	t.bus.Publish(ctx, events.TopicProductsUpdated, nil)

	return true
}

// RestoreFromSale devuelve al stock las cantidades de las líneas de una venta
// eliminada o revertida, línea por línea con origen "return".
//
// No es atómico entre líneas: si una falla, las anteriores ya quedaron
// restauradas y no se compensan. Devuelve false al primer fallo.
func (t *Tracker) RestoreFromSale(ctx context.Context, items []entity.LineItem) bool {
	for _, item := range items {
		p := t.svc.GetProduct(item.ProductID)
		if p == nil {
			t.notifier.OperationFailed(item.ProductID, "producto no encontrado al restaurar stock")
			return false
		}
		if !t.UpdateProductStock(ctx, p.ID, p.Stock+item.Quantity, entity.StockSourceReturn) {
			return false
		}
	}
	return true
}

// History devuelve una copia de toda la auditoría en orden cronológico.
func (t *Tracker) History() []entity.StockChangeEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.history.snapshot()
}

// ProductHistory devuelve la auditoría filtrada por producto.
func (t *Tracker) ProductHistory(productID string) []entity.StockChangeEvent {
	all := t.History()
	out := make([]entity.StockChangeEvent, 0, len(all))
	for _, ev := range all {
		if ev.ProductID == productID {
			out = append(out, ev)
		}
	}
	return out
}
