package dataservice

import "github.com/jhoicas/pyme-api/internal/domain/entity"

// Operaciones sobre productos, clientes y proveedores. El patrón es el mismo
// para cada entidad: List degrada a vacío, Get a nil; Create/Update/Delete
// devuelven el error de escritura al caller.

// ListProducts devuelve todos los productos. Nunca falla hacia el caller.
func (s *Service) ListProducts() []*entity.Product {
	list, err := s.store.Products().List()
	if err != nil {
		s.log.Error().Err(err).Msg("listar productos")
		return []*entity.Product{}
	}
	return list
}

// GetProduct devuelve nil si el id no existe o la lectura falla.
func (s *Service) GetProduct(id string) *entity.Product {
	p, err := s.store.Products().GetByID(id)
	if err != nil {
		s.log.Error().Err(err).Str("product_id", id).Msg("obtener producto")
		return nil
	}
	return p
}

// CreateProduct asigna id y fechas si faltan y persiste. Devuelve el registro almacenado.
func (s *Service) CreateProduct(p *entity.Product) (*entity.Product, error) {
	stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err := s.store.Products().Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProduct reemplaza el registro por id.
func (s *Service) UpdateProduct(p *entity.Product) error {
	touch(&p.UpdatedAt)
	return s.store.Products().Update(p)
}

// DeleteProduct elimina por id; id inexistente no es error.
func (s *Service) DeleteProduct(id string) error {
	return s.store.Products().Delete(id)
}

// ListClients devuelve todos los clientes. Nunca falla hacia el caller.
func (s *Service) ListClients() []*entity.Client {
	list, err := s.store.Clients().List()
	if err != nil {
		s.log.Error().Err(err).Msg("listar clientes")
		return []*entity.Client{}
	}
	return list
}

// GetClient devuelve nil si el id no existe o la lectura falla.
func (s *Service) GetClient(id string) *entity.Client {
	c, err := s.store.Clients().GetByID(id)
	if err != nil {
		s.log.Error().Err(err).Str("client_id", id).Msg("obtener cliente")
		return nil
	}
	return c
}

// CreateClient asigna id y fechas si faltan y persiste.
func (s *Service) CreateClient(c *entity.Client) (*entity.Client, error) {
	stamp(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err := s.store.Clients().Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateClient reemplaza el registro por id.
func (s *Service) UpdateClient(c *entity.Client) error {
	touch(&c.UpdatedAt)
	return s.store.Clients().Update(c)
}

// DeleteClient elimina por id.
func (s *Service) DeleteClient(id string) error {
	return s.store.Clients().Delete(id)
}

// ListSuppliers devuelve todos los proveedores. Nunca falla hacia el caller.
func (s *Service) ListSuppliers() []*entity.Supplier {
	list, err := s.store.Suppliers().List()
	if err != nil {
		s.log.Error().Err(err).Msg("listar proveedores")
		return []*entity.Supplier{}
	}
	return list
}

// GetSupplier devuelve nil si el id no existe o la lectura falla.
func (s *Service) GetSupplier(id string) *entity.Supplier {
	sp, err := s.store.Suppliers().GetByID(id)
	if err != nil {
		s.log.Error().Err(err).Str("supplier_id", id).Msg("obtener proveedor")
		return nil
	}
	return sp
}

// CreateSupplier asigna id y fechas si faltan y persiste.
func (s *Service) CreateSupplier(sp *entity.Supplier) (*entity.Supplier, error) {
	stamp(&sp.ID, &sp.CreatedAt, &sp.UpdatedAt)
	if err := s.store.Suppliers().Create(sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// UpdateSupplier reemplaza el registro por id.
func (s *Service) UpdateSupplier(sp *entity.Supplier) error {
	touch(&sp.UpdatedAt)
	return s.store.Suppliers().Update(sp)
}

// DeleteSupplier elimina por id.
func (s *Service) DeleteSupplier(id string) error {
	return s.store.Suppliers().Delete(id)
}
