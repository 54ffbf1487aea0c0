package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pyme-api/internal/application/auth"
	"github.com/jhoicas/pyme-api/internal/application/dataservice"
	"github.com/jhoicas/pyme-api/internal/application/events"
	"github.com/jhoicas/pyme-api/internal/application/sales"
	"github.com/jhoicas/pyme-api/internal/application/stock"
	"github.com/jhoicas/pyme-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Svc        *dataservice.Service
	Bus        events.Bus
	Tracker    *stock.Tracker
	SaleUC     *sales.SaleUseCase
	PurchaseUC *sales.PurchaseUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Las lecturas solo exigen token válido;
// las escrituras exigen además el permiso del área (el rol admin pasa siempre).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Svc)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	canProducts := RequirePermission(deps.Svc, func(p entity.Permissions) bool { return p.ManageProducts })
	canSales := RequirePermission(deps.Svc, func(p entity.Permissions) bool { return p.ManageSales })
	canPurchases := RequirePermission(deps.Svc, func(p entity.Permissions) bool { return p.ManagePurchases })
	canClients := RequirePermission(deps.Svc, func(p entity.Permissions) bool { return p.ManageClients })
	canSuppliers := RequirePermission(deps.Svc, func(p entity.Permissions) bool { return p.ManageSuppliers })
	canUsers := RequirePermission(deps.Svc, func(p entity.Permissions) bool { return p.ManageUsers })
	canSettings := RequirePermission(deps.Svc, func(p entity.Permissions) bool { return p.ManageSettings })

	// Products + stock
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Svc, deps.Bus)
	stockHandler := NewStockHandler(deps.Svc, deps.Tracker)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", canProducts, productHandler.Create)
	products.Put("/:id", canProducts, productHandler.Update)
	products.Delete("/:id", canProducts, productHandler.Delete)
	products.Post("/:id/stock", canProducts, stockHandler.UpdateStock)
	products.Get("/:id/stock/history", stockHandler.ProductHistory)
	protected.Get("/stock/history", stockHandler.History)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.Svc, deps.Bus)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Post("/", canClients, clientHandler.Create)
	clients.Put("/:id", canClients, clientHandler.Update)
	clients.Delete("/:id", canClients, clientHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.Svc, deps.Bus)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", canSuppliers, supplierHandler.Create)
	suppliers.Put("/:id", canSuppliers, supplierHandler.Update)
	suppliers.Delete("/:id", canSuppliers, supplierHandler.Delete)

	// Sales + delivery notes
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.Svc, deps.SaleUC)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Post("/", canSales, saleHandler.Create)
	salesGroup.Put("/:id", canSales, saleHandler.Update)
	salesGroup.Delete("/:id", canSales, saleHandler.Delete)

	notes := protected.Group("/delivery-notes")
	noteHandler := NewDeliveryNoteHandler(deps.Svc)
	notes.Get("/", noteHandler.List)
	notes.Get("/:id", noteHandler.GetByID)
	notes.Post("/", canSales, noteHandler.Create)
	notes.Put("/:id", canSales, noteHandler.Update)
	notes.Delete("/:id", canSales, noteHandler.Delete)

	// Quotes
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.Svc)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Post("/", canSales, quoteHandler.Create)
	quotes.Put("/:id", canSales, quoteHandler.Update)
	quotes.Delete("/:id", canSales, quoteHandler.Delete)

	// Purchases + purchase orders
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.Svc, deps.PurchaseUC)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Post("/", canPurchases, purchaseHandler.Create)
	purchases.Put("/:id", canPurchases, purchaseHandler.Update)
	purchases.Delete("/:id", canPurchases, purchaseHandler.Delete)

	orders := protected.Group("/purchase-orders")
	orderHandler := NewPurchaseOrderHandler(deps.Svc)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/", canPurchases, orderHandler.Create)
	orders.Put("/:id", canPurchases, orderHandler.Update)
	orders.Delete("/:id", canPurchases, orderHandler.Delete)

	// Users (administración)
	users := protected.Group("/users", canUsers)
	userHandler := NewUserHandler(deps.AuthUC, deps.Svc)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Company settings
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.Svc, deps.Bus)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", canSettings, settingsHandler.Update)
}
