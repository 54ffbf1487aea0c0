package repository

// Store es el puerto de persistencia completo de la aplicación.
// Se inyecta una sola vez en la composición: backend SQLite embebido o
// colecciones JSON en disco. El código de aplicación nunca pregunta cuál es.
type Store interface {
	Products() ProductRepository
	Clients() ClientRepository
	Suppliers() SupplierRepository
	Sales() SaleRepository
	Purchases() PurchaseRepository
	PurchaseOrders() PurchaseOrderRepository
	Quotes() QuoteRepository
	DeliveryNotes() DeliveryNoteRepository
	Users() UserRepository
	Settings() SettingsRepository
	Close() error
}
