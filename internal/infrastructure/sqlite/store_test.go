package sqlite_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pyme-api/internal/domain"
	"github.com/jhoicas/pyme-api/internal/domain/entity"
	"github.com/jhoicas/pyme-api/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newStore abre una base en memoria con el esquema ya creado.
func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(":memory:")
	require.NoError(t, err, "la base en memoria debe abrirse con el esquema")
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func intPtr(n int) *int { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

// Decimales, punteros y fechas sobreviven el viaje por columnas TEXT.
func TestProducto_Roundtrip(t *testing.T) {
	store := newStore(t)

	now := time.Now().UTC().Truncate(time.Second)
	p := &entity.Product{
		ID:            "p-1",
		Name:          "Café molido 500g",
		Barcode:       "7701234567890",
		PurchasePrice: decimal.RequireFromString("7500.50"),
		SellingPrice:  decimal.RequireFromString("12900"),
		TaxRate:       decimal.RequireFromString("0.19"),
		Stock:         12,
		ReorderLevel:  intPtr(4),
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, store.Products().Create(p))

	got, err := store.Products().GetByID("p-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Café molido 500g", got.Name)
	assert.True(t, got.PurchasePrice.Equal(decimal.RequireFromString("7500.50")))
	assert.True(t, got.TaxRate.Equal(decimal.RequireFromString("0.19")))
	assert.Equal(t, 12, got.Stock)
	require.NotNil(t, got.ReorderLevel)
	assert.Equal(t, 4, *got.ReorderLevel)
	assert.True(t, got.Active)
	assert.True(t, got.CreatedAt.Equal(now), "la fecha debe conservarse al segundo")
}

// ReorderLevel nil persiste como NULL y vuelve como nil.
func TestProducto_ReorderLevelNulo(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Products().Create(&entity.Product{ID: "p-1", Name: "Sal"}))

	got, err := store.Products().GetByID("p-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.ReorderLevel)
}

func TestProducto_GetByIDInexistente_NilSinError(t *testing.T) {
	store := newStore(t)

	got, err := store.Products().GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProducto_UpdateYDelete(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Products().Create(&entity.Product{ID: "p-1", Name: "Arroz", Stock: 5}))

	require.NoError(t, store.Products().Update(&entity.Product{ID: "p-1", Name: "Arroz premium", Stock: 9}))
	got, err := store.Products().GetByID("p-1")
	require.NoError(t, err)
	assert.Equal(t, "Arroz premium", got.Name)
	assert.Equal(t, 9, got.Stock)

	require.NoError(t, store.Products().Delete("p-1"))
	got, err = store.Products().GetByID("p-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Documentos con líneas
// ──────────────────────────────────────────────────────────────────────────────

// Las líneas van como JSON en una columna y vuelven completas.
func TestVenta_LineasRoundtrip(t *testing.T) {
	store := newStore(t)

	sale := &entity.Sale{
		ID:       "s-1",
		ClientID: "c-1",
		Items: []entity.LineItem{
			{ProductID: "p-1", ProductName: "Café", Quantity: 2, UnitPrice: decimal.RequireFromString("12900"), Total: decimal.RequireFromString("25800")},
			{ProductID: "p-2", ProductName: "Azúcar", Quantity: 1, UnitPrice: decimal.RequireFromString("3000"), Total: decimal.RequireFromString("3000")},
		},
		Subtotal:      decimal.RequireFromString("28800"),
		Total:         decimal.RequireFromString("28800"),
		PaymentStatus: entity.SalePaid,
	}
	require.NoError(t, store.Sales().Create(sale))

	got, err := store.Sales().GetByID("s-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Café", got.Items[0].ProductName)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.True(t, got.Items[0].Total.Equal(decimal.RequireFromString("25800")))
	assert.Equal(t, entity.SalePaid, got.PaymentStatus)
}

// La fecha estimada de una orden es opcional.
func TestOrdenDeCompra_FechaOpcional(t *testing.T) {
	store := newStore(t)

	expected := time.Now().UTC().Truncate(time.Second).AddDate(0, 0, 7)
	require.NoError(t, store.PurchaseOrders().Create(&entity.PurchaseOrder{
		ID:           "o-1",
		SupplierID:   "sp-1",
		Status:       entity.OrderSent,
		ExpectedDate: &expected,
	}))
	require.NoError(t, store.PurchaseOrders().Create(&entity.PurchaseOrder{
		ID:         "o-2",
		SupplierID: "sp-1",
		Status:     entity.OrderPending,
	}))

	con, err := store.PurchaseOrders().GetByID("o-1")
	require.NoError(t, err)
	require.NotNil(t, con.ExpectedDate)
	assert.True(t, con.ExpectedDate.Equal(expected))

	sin, err := store.PurchaseOrders().GetByID("o-2")
	require.NoError(t, err)
	assert.Nil(t, sin.ExpectedDate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios y configuración
// ──────────────────────────────────────────────────────────────────────────────

// El constraint UNIQUE de username aflora como error de dominio.
func TestUsuario_UsernameDuplicado(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Users().Create(&entity.User{ID: "u-1", Username: "maria", Role: entity.RoleManager}))
	err := store.Users().Create(&entity.User{ID: "u-2", Username: "maria", Role: entity.RoleEmployee})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

// Los permisos viajan como JSON y vuelven campo a campo.
func TestUsuario_PermisosRoundtrip(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Users().Create(&entity.User{
		ID:       "u-1",
		Username: "vendedor",
		Role:     entity.RoleEmployee,
		Permissions: entity.Permissions{
			ManageSales:   true,
			ManageClients: true,
		},
		Active: true,
	}))

	got, err := store.Users().GetByUsername("vendedor")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Permissions.ManageSales)
	assert.True(t, got.Permissions.ManageClients)
	assert.False(t, got.Permissions.ManageUsers)
}

// La configuración es un registro único: guardar dos veces es actualizar.
func TestConfiguracion_Upsert(t *testing.T) {
	store := newStore(t)

	got, err := store.Settings().Get()
	require.NoError(t, err)
	assert.Nil(t, got, "sin guardar, la configuración es nil")

	require.NoError(t, store.Settings().Save(&entity.CompanySettings{Name: "Mi Empresa", Currency: "COP", LowStockThreshold: 5}))
	require.NoError(t, store.Settings().Save(&entity.CompanySettings{Name: "Tienda La Esquina", Currency: "COP", LowStockThreshold: 8}))

	got, err = store.Settings().Get()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Tienda La Esquina", got.Name)
	assert.Equal(t, 8, got.LowStockThreshold)
}
