package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pyme-api/internal/application/dataservice"
	"github.com/jhoicas/pyme-api/internal/application/events"
	"github.com/jhoicas/pyme-api/internal/application/sales"
	"github.com/jhoicas/pyme-api/internal/application/stock"
	"github.com/jhoicas/pyme-api/internal/domain"
	"github.com/jhoicas/pyme-api/internal/domain/entity"
	"github.com/jhoicas/pyme-api/internal/infrastructure/filestore"
	"github.com/jhoicas/pyme-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newUseCases(t *testing.T) (*dataservice.Service, *sales.SaleUseCase, *sales.PurchaseUseCase, *stock.Tracker) {
	t.Helper()
	store, err := filestore.New(afero.NewMemMapFs(), "data")
	require.NoError(t, err)
	svc := dataservice.New(store, logger.Nop(), dataservice.Options{DefaultLowStock: 5})
	tracker := stock.NewTracker(svc, events.NewMemoryBus(), stock.NopNotifier{}, logger.Nop(), 100)
	return svc, sales.NewSaleUseCase(svc, tracker), sales.NewPurchaseUseCase(svc, tracker), tracker
}

func crearProducto(t *testing.T, svc *dataservice.Service, name, selling, tax string, stockInicial int) *entity.Product {
	t.Helper()
	p, err := svc.CreateProduct(&entity.Product{
		Name:          name,
		SellingPrice:  decimal.RequireFromString(selling),
		PurchasePrice: decimal.RequireFromString(selling).Div(decimal.NewFromInt(2)),
		TaxRate:       decimal.RequireFromString(tax),
		Stock:         stockInicial,
		Active:        true,
	})
	require.NoError(t, err)
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

// El alta completa las líneas desde el catálogo, calcula totales con decimales
// exactos y descuenta el stock con origen "sale".
func TestCreateSale_TotalesYDescuentoDeStock(t *testing.T) {
	svc, saleUC, _, tracker := newUseCases(t)
	p := crearProducto(t, svc, "Café molido", "10000", "0.19", 10)

	out, err := saleUC.CreateSale(context.Background(), &entity.Sale{
		ClientID: "c-1",
		Items:    []entity.LineItem{{ProductID: p.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "Café molido", out.Items[0].ProductName, "el nombre se completa desde el catálogo")
	assert.True(t, out.Items[0].UnitPrice.Equal(decimal.RequireFromString("10000")))
	assert.True(t, out.Items[0].Total.Equal(decimal.RequireFromString("30000")))
	assert.True(t, out.Subtotal.Equal(decimal.RequireFromString("30000")))
	assert.True(t, out.TaxTotal.Equal(decimal.RequireFromString("5700")), "30000 * 0.19")
	assert.True(t, out.Total.Equal(decimal.RequireFromString("35700")))

	assert.Equal(t, 7, svc.GetProduct(p.ID).Stock, "10 - 3 vendidos")

	hist := tracker.ProductHistory(p.ID)
	require.Len(t, hist, 1)
	assert.Equal(t, entity.StockSourceSale, hist[0].Source)

	require.NotNil(t, svc.GetSale(out.ID), "la venta queda persistida")
}

// Dos líneas del mismo producto descuentan ambas: el segundo descuento se
// calcula sobre el stock ya rebajado, no sobre el valor previo a la venta.
func TestCreateSale_DosLineasMismoProducto(t *testing.T) {
	svc, saleUC, _, tracker := newUseCases(t)
	p := crearProducto(t, svc, "Harina", "3500", "0", 10)

	out, err := saleUC.CreateSale(context.Background(), &entity.Sale{
		Items: []entity.LineItem{
			{ProductID: p.ID, Quantity: 2},
			{ProductID: p.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, svc.GetProduct(p.ID).Stock, "10 - 2 - 3 vendidos")

	hist := tracker.ProductHistory(p.ID)
	require.Len(t, hist, 2)
	assert.Equal(t, 8, hist[0].NewStock)
	assert.Equal(t, 5, hist[1].NewStock)

	// La restauración es simétrica línea por línea.
	require.NoError(t, saleUC.DeleteSale(context.Background(), out.ID))
	assert.Equal(t, 10, svc.GetProduct(p.ID).Stock)
}

// La verificación de existencias agrega las cantidades por producto: dos
// líneas que por separado caben pero juntas no, se rechazan sin efectos.
func TestCreateSale_LineasRepetidasAgotanStock(t *testing.T) {
	svc, saleUC, _, _ := newUseCases(t)
	p := crearProducto(t, svc, "Arroz", "2500", "0", 10)

	_, err := saleUC.CreateSale(context.Background(), &entity.Sale{
		Items: []entity.LineItem{
			{ProductID: p.ID, Quantity: 6},
			{ProductID: p.ID, Quantity: 6},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, svc.GetProduct(p.ID).Stock, "el stock no debe cambiar")
	assert.Empty(t, svc.ListSales())
}

// Sin existencias suficientes la venta se rechaza entera, sin efectos.
func TestCreateSale_StockInsuficiente(t *testing.T) {
	svc, saleUC, _, _ := newUseCases(t)
	p := crearProducto(t, svc, "Té verde", "8000", "0", 2)

	_, err := saleUC.CreateSale(context.Background(), &entity.Sale{
		Items: []entity.LineItem{{ProductID: p.ID, Quantity: 5}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 2, svc.GetProduct(p.ID).Stock, "el stock no debe cambiar")
	assert.Empty(t, svc.ListSales(), "la venta no debe persistirse")
}

// Una venta sin líneas o con cantidades inválidas es entrada inválida.
func TestCreateSale_LineasInvalidas(t *testing.T) {
	svc, saleUC, _, _ := newUseCases(t)
	p := crearProducto(t, svc, "Pan", "2000", "0", 10)

	_, err := saleUC.CreateSale(context.Background(), &entity.Sale{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = saleUC.CreateSale(context.Background(), &entity.Sale{
		Items: []entity.LineItem{{ProductID: p.ID, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = saleUC.CreateSale(context.Background(), &entity.Sale{
		Items: []entity.LineItem{{ProductID: "fantasma", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si la línea trae precio propio, ese precio manda sobre el del catálogo.
func TestCreateSale_RespetaPrecioDeLinea(t *testing.T) {
	svc, saleUC, _, _ := newUseCases(t)
	p := crearProducto(t, svc, "Queso", "12000", "0", 4)

	out, err := saleUC.CreateSale(context.Background(), &entity.Sale{
		Items: []entity.LineItem{{
			ProductID: p.ID,
			Quantity:  2,
			UnitPrice: decimal.RequireFromString("9900"),
		}},
	})
	require.NoError(t, err)
	assert.True(t, out.Items[0].Total.Equal(decimal.RequireFromString("19800")))
}

// Eliminar la venta devuelve las cantidades al stock con origen "return".
func TestDeleteSale_RestauraStock(t *testing.T) {
	svc, saleUC, _, tracker := newUseCases(t)
	p := crearProducto(t, svc, "Mantequilla", "6000", "0.19", 10)

	out, err := saleUC.CreateSale(context.Background(), &entity.Sale{
		Items: []entity.LineItem{{ProductID: p.ID, Quantity: 4}},
	})
	require.NoError(t, err)
	require.Equal(t, 6, svc.GetProduct(p.ID).Stock)

	require.NoError(t, saleUC.DeleteSale(context.Background(), out.ID))

	assert.Equal(t, 10, svc.GetProduct(p.ID).Stock, "el stock vuelve al valor previo")
	assert.Nil(t, svc.GetSale(out.ID))

	hist := tracker.ProductHistory(p.ID)
	require.Len(t, hist, 2)
	assert.Equal(t, entity.StockSourceReturn, hist[1].Source)
}

func TestDeleteSale_Inexistente(t *testing.T) {
	_, saleUC, _, _ := newUseCases(t)
	assert.ErrorIs(t, saleUC.DeleteSale(context.Background(), "nope"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras
// ──────────────────────────────────────────────────────────────────────────────

// Una compra completada ingresa las cantidades al stock con origen "purchase".
func TestCreatePurchase_CompletadaIngresaStock(t *testing.T) {
	svc, _, purchaseUC, tracker := newUseCases(t)
	p := crearProducto(t, svc, "Azúcar", "3000", "0", 2)

	out, err := purchaseUC.CreatePurchase(context.Background(), &entity.Purchase{
		SupplierID: "s-1",
		Status:     entity.PurchaseCompleted,
		Items:      []entity.LineItem{{ProductID: p.ID, Quantity: 8}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseCompleted, out.Status)

	assert.Equal(t, 10, svc.GetProduct(p.ID).Stock, "2 + 8 recibidos")

	hist := tracker.ProductHistory(p.ID)
	require.Len(t, hist, 1)
	assert.Equal(t, entity.StockSourcePurchase, hist[0].Source)
}

// Una compra pendiente no toca existencias hasta completarse.
func TestCreatePurchase_PendienteNoTocaStock(t *testing.T) {
	svc, _, purchaseUC, tracker := newUseCases(t)
	p := crearProducto(t, svc, "Aceituna", "5000", "0", 2)

	_, err := purchaseUC.CreatePurchase(context.Background(), &entity.Purchase{
		SupplierID: "s-1",
		Items:      []entity.LineItem{{ProductID: p.ID, Quantity: 8}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, svc.GetProduct(p.ID).Stock)
	assert.Empty(t, tracker.History())
}

// El precio de compra del catálogo completa la línea cuando viene vacía.
func TestCreatePurchase_CompletaPrecioDeCompra(t *testing.T) {
	svc, _, purchaseUC, _ := newUseCases(t)
	p := crearProducto(t, svc, "Lenteja", "4000", "0", 0)

	out, err := purchaseUC.CreatePurchase(context.Background(), &entity.Purchase{
		SupplierID: "s-1",
		Items:      []entity.LineItem{{ProductID: p.ID, Quantity: 10}},
	})
	require.NoError(t, err)
	assert.True(t, out.Items[0].UnitPrice.Equal(decimal.RequireFromString("2000")),
		"la mitad del precio de venta según el helper de catálogo")
	assert.True(t, out.Total.Equal(decimal.RequireFromString("20000")))
}
