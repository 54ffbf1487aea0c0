package repository

import "github.com/jhoicas/pyme-api/internal/domain/entity"

// ClientRepository contrato CRUD para clientes.
type ClientRepository interface {
	List() ([]*entity.Client, error)
	GetByID(id string) (*entity.Client, error)
	Create(c *entity.Client) error
	Update(c *entity.Client) error
	Delete(id string) error
}

// SupplierRepository contrato CRUD para proveedores.
type SupplierRepository interface {
	List() ([]*entity.Supplier, error)
	GetByID(id string) (*entity.Supplier, error)
	Create(s *entity.Supplier) error
	Update(s *entity.Supplier) error
	Delete(id string) error
}
