package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/jhoicas/pyme-api/internal/domain/entity"
	"github.com/jhoicas/pyme-api/internal/domain/repository"
)

var _ repository.Store = (*Store)(nil)

// Claves de colección del almacén de archivos. Una colección = un archivo
// <clave>.json bajo el directorio de datos.
const (
	keyProducts       = "products"
	keySales          = "sales"
	keyPurchases      = "purchases"
	keyClients        = "clients"
	keySuppliers      = "suppliers"
	keyQuotes         = "quotes"
	keyDeliveryNotes  = "delivery_notes"
	keyPurchaseOrders = "purchase_orders"
	keyUsers          = "users"
	keySettings       = "companySettings"
)

// Store implementación de repository.Store sobre colecciones JSON en disco.
// Se usa afero.Fs para poder correr los tests contra un filesystem en memoria.
type Store struct {
	fs  afero.Fs
	dir string

	products       *collection[entity.Product]
	clients        *collection[entity.Client]
	suppliers      *collection[entity.Supplier]
	sales          *collection[entity.Sale]
	purchases      *collection[entity.Purchase]
	purchaseOrders *collection[entity.PurchaseOrder]
	quotes         *collection[entity.Quote]
	deliveryNotes  *collection[entity.DeliveryNote]
	users          *userCollection
	settings       *settingsStore
}

// New construye el almacén de archivos sobre fs, creando dir si no existe.
func New(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	path := func(key string) string { return filepath.Join(dir, key+".json") }

	s := &Store{fs: fs, dir: dir}
	s.products = newCollection(fs, path(keyProducts), func(p *entity.Product) string { return p.ID })
	s.clients = newCollection(fs, path(keyClients), func(c *entity.Client) string { return c.ID })
	s.suppliers = newCollection(fs, path(keySuppliers), func(sp *entity.Supplier) string { return sp.ID })
	s.sales = newCollection(fs, path(keySales), func(sl *entity.Sale) string { return sl.ID })
	s.purchases = newCollection(fs, path(keyPurchases), func(p *entity.Purchase) string { return p.ID })
	s.purchaseOrders = newCollection(fs, path(keyPurchaseOrders), func(o *entity.PurchaseOrder) string { return o.ID })
	s.quotes = newCollection(fs, path(keyQuotes), func(q *entity.Quote) string { return q.ID })
	s.deliveryNotes = newCollection(fs, path(keyDeliveryNotes), func(n *entity.DeliveryNote) string { return n.ID })
	s.users = &userCollection{newCollection(fs, path(keyUsers), func(u *entity.User) string { return u.ID })}
	s.settings = &settingsStore{fs: fs, path: path(keySettings)}
	return s, nil
}

func (s *Store) Products() repository.ProductRepository             { return s.products }
func (s *Store) Clients() repository.ClientRepository               { return s.clients }
func (s *Store) Suppliers() repository.SupplierRepository           { return s.suppliers }
func (s *Store) Sales() repository.SaleRepository                   { return s.sales }
func (s *Store) Purchases() repository.PurchaseRepository           { return s.purchases }
func (s *Store) PurchaseOrders() repository.PurchaseOrderRepository { return s.purchaseOrders }
func (s *Store) Quotes() repository.QuoteRepository                 { return s.quotes }
func (s *Store) DeliveryNotes() repository.DeliveryNoteRepository   { return s.deliveryNotes }
func (s *Store) Users() repository.UserRepository                   { return s.users }
func (s *Store) Settings() repository.SettingsRepository            { return s.settings }

// Close no tiene recursos que liberar en este backend.
func (s *Store) Close() error { return nil }

// userCollection extiende la colección genérica con búsqueda por username.
type userCollection struct {
	*collection[entity.User]
}

// GetByUsername busca linealmente por username. Devuelve (nil, nil) si no existe.
func (c *userCollection) GetByUsername(username string) (*entity.User, error) {
	users, err := c.List()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// settingsStore guarda el registro único companySettings como objeto JSON.
type settingsStore struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

// Get devuelve la configuración, o (nil, nil) si nunca se guardó o está corrupta.
func (s *settingsStore) Get() (*entity.CompanySettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer configuración: %w", err)
	}
	var cfg entity.CompanySettings
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, nil
	}
	return &cfg, nil
}

// Save reescribe el objeto de configuración completo.
func (s *settingsStore) Save(cfg *entity.CompanySettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar configuración: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("escribir configuración: %w", err)
	}
	return nil
}
