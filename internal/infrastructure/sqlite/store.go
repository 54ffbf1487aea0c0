package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jhoicas/pyme-api/internal/domain/repository"
)

var _ repository.Store = (*Store)(nil)

// Store implementación de repository.Store sobre SQLite embebido.
// Todas las consultas usan binding de parámetros (?); nunca se concatena SQL
// con valores del caller.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) la base en path y asegura el esquema.
// Usar ":memory:" en tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de la base: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	// SQLite serializa escritores; una sola conexión evita SQLITE_BUSY en ráfagas.
	db.SetMaxOpenConns(1)

	if err := bootstrap(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Products() repository.ProductRepository             { return &ProductRepo{db: s.db} }
func (s *Store) Clients() repository.ClientRepository               { return &ClientRepo{db: s.db} }
func (s *Store) Suppliers() repository.SupplierRepository           { return &SupplierRepo{db: s.db} }
func (s *Store) Sales() repository.SaleRepository                   { return &SaleRepo{db: s.db} }
func (s *Store) Purchases() repository.PurchaseRepository           { return &PurchaseRepo{db: s.db} }
func (s *Store) PurchaseOrders() repository.PurchaseOrderRepository { return &PurchaseOrderRepo{db: s.db} }
func (s *Store) Quotes() repository.QuoteRepository                 { return &QuoteRepo{db: s.db} }
func (s *Store) DeliveryNotes() repository.DeliveryNoteRepository   { return &DeliveryNoteRepo{db: s.db} }
func (s *Store) Users() repository.UserRepository                   { return &UserRepo{db: s.db} }
func (s *Store) Settings() repository.SettingsRepository            { return &SettingsRepo{db: s.db} }

// Close cierra la conexión a la base.
func (s *Store) Close() error { return s.db.Close() }

// bootstrap crea las tablas si no existen. Fechas como TEXT ISO-8601,
// montos decimales como TEXT, líneas de documento como JSON en columna TEXT.
func bootstrap(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id             TEXT PRIMARY KEY,
			name           TEXT NOT NULL,
			barcode        TEXT NOT NULL DEFAULT '',
			category       TEXT NOT NULL DEFAULT '',
			supplier_id    TEXT NOT NULL DEFAULT '',
			description    TEXT NOT NULL DEFAULT '',
			purchase_price TEXT NOT NULL DEFAULT '0',
			selling_price  TEXT NOT NULL DEFAULT '0',
			tax_rate       TEXT NOT NULL DEFAULT '0',
			stock          INTEGER NOT NULL DEFAULT 0,
			reorder_level  INTEGER,
			active         INTEGER NOT NULL DEFAULT 1,
			created_at     TEXT NOT NULL,
			updated_at     TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS clients (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL DEFAULT '',
			phone      TEXT NOT NULL DEFAULT '',
			address    TEXT NOT NULL DEFAULT '',
			city       TEXT NOT NULL DEFAULT '',
			tax_id     TEXT NOT NULL DEFAULT '',
			notes      TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS suppliers (
			id           TEXT PRIMARY KEY,
			name         TEXT NOT NULL,
			contact_name TEXT NOT NULL DEFAULT '',
			email        TEXT NOT NULL DEFAULT '',
			phone        TEXT NOT NULL DEFAULT '',
			address      TEXT NOT NULL DEFAULT '',
			city         TEXT NOT NULL DEFAULT '',
			tax_id       TEXT NOT NULL DEFAULT '',
			notes        TEXT NOT NULL DEFAULT '',
			created_at   TEXT NOT NULL,
			updated_at   TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id             TEXT PRIMARY KEY,
			client_id      TEXT NOT NULL DEFAULT '',
			items          TEXT NOT NULL DEFAULT '[]',
			subtotal       TEXT NOT NULL DEFAULT '0',
			tax_total      TEXT NOT NULL DEFAULT '0',
			total          TEXT NOT NULL DEFAULT '0',
			payment_status TEXT NOT NULL DEFAULT 'pending',
			payment_method TEXT NOT NULL DEFAULT '',
			created_at     TEXT NOT NULL,
			updated_at     TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS purchases (
			id          TEXT PRIMARY KEY,
			supplier_id TEXT NOT NULL DEFAULT '',
			items       TEXT NOT NULL DEFAULT '[]',
			subtotal    TEXT NOT NULL DEFAULT '0',
			tax_total   TEXT NOT NULL DEFAULT '0',
			total       TEXT NOT NULL DEFAULT '0',
			status      TEXT NOT NULL DEFAULT 'pending',
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS purchase_orders (
			id            TEXT PRIMARY KEY,
			supplier_id   TEXT NOT NULL DEFAULT '',
			items         TEXT NOT NULL DEFAULT '[]',
			subtotal      TEXT NOT NULL DEFAULT '0',
			tax_total     TEXT NOT NULL DEFAULT '0',
			total         TEXT NOT NULL DEFAULT '0',
			status        TEXT NOT NULL DEFAULT 'pending',
			expected_date TEXT,
			created_at    TEXT NOT NULL,
			updated_at    TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS quotes (
			id          TEXT PRIMARY KEY,
			client_id   TEXT NOT NULL DEFAULT '',
			items       TEXT NOT NULL DEFAULT '[]',
			subtotal    TEXT NOT NULL DEFAULT '0',
			tax_total   TEXT NOT NULL DEFAULT '0',
			total       TEXT NOT NULL DEFAULT '0',
			status      TEXT NOT NULL DEFAULT 'pending',
			valid_until TEXT NOT NULL,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS delivery_notes (
			id           TEXT PRIMARY KEY,
			client_id    TEXT NOT NULL DEFAULT '',
			sale_id      TEXT NOT NULL DEFAULT '',
			items        TEXT NOT NULL DEFAULT '[]',
			status       TEXT NOT NULL DEFAULT 'pending',
			delivered_at TEXT,
			created_at   TEXT NOT NULL,
			updated_at   TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			full_name     TEXT NOT NULL DEFAULT '',
			role          TEXT NOT NULL DEFAULT 'employee',
			permissions   TEXT NOT NULL DEFAULT '{}',
			active        INTEGER NOT NULL DEFAULT 1,
			created_at    TEXT NOT NULL,
			updated_at    TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS company_settings (
			id                  INTEGER PRIMARY KEY CHECK (id = 1),
			name                TEXT NOT NULL DEFAULT '',
			tax_id              TEXT NOT NULL DEFAULT '',
			address             TEXT NOT NULL DEFAULT '',
			phone               TEXT NOT NULL DEFAULT '',
			email               TEXT NOT NULL DEFAULT '',
			currency            TEXT NOT NULL DEFAULT 'COP',
			low_stock_threshold INTEGER NOT NULL DEFAULT 5,
			updated_at          TEXT NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("bootstrap esquema: %w", err)
		}
	}
	return nil
}
