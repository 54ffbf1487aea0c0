package repository

import "github.com/jhoicas/pyme-api/internal/domain/entity"

// ProductRepository contrato CRUD para productos.
// GetByID devuelve (nil, nil) cuando el id no existe; no es un error.
type ProductRepository interface {
	List() ([]*entity.Product, error)
	GetByID(id string) (*entity.Product, error)
	Create(p *entity.Product) error
	Update(p *entity.Product) error
	Delete(id string) error
}
