package stock_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pyme-api/internal/application/dataservice"
	"github.com/jhoicas/pyme-api/internal/application/events"
	"github.com/jhoicas/pyme-api/internal/application/stock"
	"github.com/jhoicas/pyme-api/internal/domain/entity"
	"github.com/jhoicas/pyme-api/internal/infrastructure/filestore"
	"github.com/jhoicas/pyme-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// spyNotifier captura las alertas emitidas por el rastreador.
type spyNotifier struct {
	lowStock []string // "producto:stock:umbral"
	failed   []string // "producto:razón"
}

func (n *spyNotifier) LowStock(p *entity.Product, newStock, threshold int) {
	n.lowStock = append(n.lowStock, fmt.Sprintf("%s:%d:%d", p.ID, newStock, threshold))
}

func (n *spyNotifier) OperationFailed(productID, reason string) {
	n.failed = append(n.failed, productID+":"+reason)
}

// newTracker arma la fachada, el bus y el rastreador sobre un filestore en memoria.
func newTracker(t *testing.T, historySize int) (*dataservice.Service, *stock.Tracker, *spyNotifier, *events.MemoryBus) {
	t.Helper()
	store, err := filestore.New(afero.NewMemMapFs(), "data")
	require.NoError(t, err)
	svc := dataservice.New(store, logger.Nop(), dataservice.Options{DefaultLowStock: 5})
	notifier := &spyNotifier{}
	bus := events.NewMemoryBus()
	tracker := stock.NewTracker(svc, bus, notifier, logger.Nop(), historySize)
	return svc, tracker, notifier, bus
}

func crearProducto(t *testing.T, svc *dataservice.Service, name string, stockInicial int, reorder *int) *entity.Product {
	t.Helper()
	p, err := svc.CreateProduct(&entity.Product{
		Name:         name,
		Stock:        stockInicial,
		ReorderLevel: reorder,
		Active:       true,
	})
	require.NoError(t, err)
	return p
}

func intPtr(n int) *int { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Mutación de stock
// ──────────────────────────────────────────────────────────────────────────────

// El cambio se persiste y queda auditado con origen y stock anterior/nuevo.
func TestUpdateProductStock_PersisteYAudita(t *testing.T) {
	svc, tracker, _, _ := newTracker(t, 100)
	p := crearProducto(t, svc, "Aceite 1L", 20, nil)

	ok := tracker.UpdateProductStock(context.Background(), p.ID, 14, entity.StockSourceSale)
	require.True(t, ok)

	assert.Equal(t, 14, svc.GetProduct(p.ID).Stock)

	hist := tracker.History()
	require.Len(t, hist, 1)
	assert.Equal(t, p.ID, hist[0].ProductID)
	assert.Equal(t, 20, hist[0].PreviousStock)
	assert.Equal(t, 14, hist[0].NewStock)
	assert.Equal(t, entity.StockSourceSale, hist[0].Source)
	assert.False(t, hist[0].At.IsZero())
}

// Un stock negativo se rechaza sin tocar el producto ni la auditoría.
func TestUpdateProductStock_RechazaNegativo(t *testing.T) {
	svc, tracker, notifier, _ := newTracker(t, 100)
	p := crearProducto(t, svc, "Harina", 9, nil)

	ok := tracker.UpdateProductStock(context.Background(), p.ID, -1, entity.StockSourceManual)
	assert.False(t, ok)
	assert.Equal(t, 9, svc.GetProduct(p.ID).Stock, "el producto no debe cambiar")
	assert.Empty(t, tracker.History())
	assert.Len(t, notifier.failed, 1)
}

// Producto inexistente devuelve false y avisa por el notificador.
func TestUpdateProductStock_ProductoInexistente(t *testing.T) {
	_, tracker, notifier, _ := newTracker(t, 100)

	ok := tracker.UpdateProductStock(context.Background(), "fantasma", 3, entity.StockSourceManual)
	assert.False(t, ok)
	assert.Len(t, notifier.failed, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas de stock bajo
// ──────────────────────────────────────────────────────────────────────────────

// La alerta dispara cuando el nuevo stock queda igual o bajo el umbral; el
// umbral del producto manda sobre el global.
func TestLowStock_UmbralInclusive(t *testing.T) {
	svc, tracker, notifier, _ := newTracker(t, 100)
	p := crearProducto(t, svc, "Leche", 50, intPtr(10))

	tracker.UpdateProductStock(context.Background(), p.ID, 11, entity.StockSourceSale)
	assert.Empty(t, notifier.lowStock, "11 > umbral 10: sin alerta")

	tracker.UpdateProductStock(context.Background(), p.ID, 10, entity.StockSourceSale)
	require.Len(t, notifier.lowStock, 1, "igual al umbral sí alerta")
	assert.Equal(t, p.ID+":10:10", notifier.lowStock[0])
}

// Sin ReorderLevel aplica el umbral global de la configuración (5).
func TestLowStock_UmbralGlobal(t *testing.T) {
	svc, tracker, notifier, _ := newTracker(t, 100)
	p := crearProducto(t, svc, "Sal", 50, nil)

	tracker.UpdateProductStock(context.Background(), p.ID, 6, entity.StockSourceSale)
	assert.Empty(t, notifier.lowStock)

	tracker.UpdateProductStock(context.Background(), p.ID, 5, entity.StockSourceSale)
	require.Len(t, notifier.lowStock, 1)
	assert.Equal(t, p.ID+":5:5", notifier.lowStock[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Restauración desde venta
// ──────────────────────────────────────────────────────────────────────────────

// Las cantidades de cada línea vuelven al stock con origen "return".
func TestRestoreFromSale_DevuelveCantidades(t *testing.T) {
	svc, tracker, _, _ := newTracker(t, 100)
	a := crearProducto(t, svc, "Galletas", 0, nil)
	b := crearProducto(t, svc, "Chocolate", 7, nil)

	ok := tracker.RestoreFromSale(context.Background(), []entity.LineItem{
		{ProductID: a.ID, Quantity: 2},
		{ProductID: a.ID, Quantity: 3},
		{ProductID: b.ID, Quantity: 1},
	})
	require.True(t, ok)

	assert.Equal(t, 5, svc.GetProduct(a.ID).Stock, "0 + 2 + 3")
	assert.Equal(t, 8, svc.GetProduct(b.ID).Stock, "7 + 1")

	for _, ev := range tracker.History() {
		assert.Equal(t, entity.StockSourceReturn, ev.Source)
	}
}

// Una línea con producto inexistente corta la restauración.
func TestRestoreFromSale_CortaEnProductoInexistente(t *testing.T) {
	svc, tracker, notifier, _ := newTracker(t, 100)
	a := crearProducto(t, svc, "Té", 1, nil)

	ok := tracker.RestoreFromSale(context.Background(), []entity.LineItem{
		{ProductID: a.ID, Quantity: 4},
		{ProductID: "fantasma", Quantity: 9},
	})
	assert.False(t, ok)
	assert.Equal(t, 5, svc.GetProduct(a.ID).Stock, "la primera línea ya quedó aplicada")
	assert.NotEmpty(t, notifier.failed)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auditoría acotada y eventos
// ──────────────────────────────────────────────────────────────────────────────

// El buffer circular retiene solo los últimos N cambios, en orden cronológico.
func TestHistorial_BufferAcotado(t *testing.T) {
	svc, tracker, _, _ := newTracker(t, 3)
	p := crearProducto(t, svc, "Velas", 100, nil)

	for i := 1; i <= 5; i++ {
		require.True(t, tracker.UpdateProductStock(context.Background(), p.ID, 100-i, entity.StockSourceManual))
	}

	hist := tracker.History()
	require.Len(t, hist, 3, "capacidad 3: los dos primeros cambios se descartan")
	assert.Equal(t, 97, hist[0].NewStock)
	assert.Equal(t, 96, hist[1].NewStock)
	assert.Equal(t, 95, hist[2].NewStock)
}

// ProductHistory filtra la auditoría por producto.
func TestHistorial_PorProducto(t *testing.T) {
	svc, tracker, _, _ := newTracker(t, 100)
	a := crearProducto(t, svc, "Jabón", 10, nil)
	b := crearProducto(t, svc, "Shampoo", 10, nil)

	tracker.UpdateProductStock(context.Background(), a.ID, 9, entity.StockSourceSale)
	tracker.UpdateProductStock(context.Background(), b.ID, 8, entity.StockSourceSale)
	tracker.UpdateProductStock(context.Background(), a.ID, 7, entity.StockSourceSale)

	histA := tracker.ProductHistory(a.ID)
	require.Len(t, histA, 2)
	assert.Equal(t, 9, histA[0].NewStock)
	assert.Equal(t, 7, histA[1].NewStock)
}

// Cada mutación publica el detalle del cambio y el aviso genérico de catálogo.
func TestEventos_SePublicanPorMutacion(t *testing.T) {
	svc, tracker, _, bus := newTracker(t, 100)
	p := crearProducto(t, svc, "Miel", 12, nil)

	var cambios []stock.StockChangedPayload
	bus.Subscribe(events.TopicProductStockChanged, func(ev events.Event) {
		payload, ok := ev.Payload.(stock.StockChangedPayload)
		require.True(t, ok)
		cambios = append(cambios, payload)
	})
	catalogo := 0
	bus.Subscribe(events.TopicProductsUpdated, func(events.Event) { catalogo++ })

	tracker.UpdateProductStock(context.Background(), p.ID, 10, entity.StockSourcePurchase)

	require.Len(t, cambios, 1)
	assert.Equal(t, p.ID, cambios[0].ProductID)
	assert.Equal(t, 12, cambios[0].PreviousStock)
	assert.Equal(t, 10, cambios[0].NewStock)
	assert.Equal(t, entity.StockSourcePurchase, cambios[0].Source)
	assert.Equal(t, 1, catalogo)
}
