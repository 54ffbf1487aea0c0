package repository

import "github.com/jhoicas/pyme-api/internal/domain/entity"

// Contratos CRUD simétricos para los documentos comerciales. El contrato es el
// mismo para todos a propósito: ningún documento tiene operaciones "a medias".

// SaleRepository contrato CRUD para ventas.
type SaleRepository interface {
	List() ([]*entity.Sale, error)
	GetByID(id string) (*entity.Sale, error)
	Create(s *entity.Sale) error
	Update(s *entity.Sale) error
	Delete(id string) error
}

// PurchaseRepository contrato CRUD para compras.
type PurchaseRepository interface {
	List() ([]*entity.Purchase, error)
	GetByID(id string) (*entity.Purchase, error)
	Create(p *entity.Purchase) error
	Update(p *entity.Purchase) error
	Delete(id string) error
}

// PurchaseOrderRepository contrato CRUD para órdenes de compra.
type PurchaseOrderRepository interface {
	List() ([]*entity.PurchaseOrder, error)
	GetByID(id string) (*entity.PurchaseOrder, error)
	Create(o *entity.PurchaseOrder) error
	Update(o *entity.PurchaseOrder) error
	Delete(id string) error
}

// QuoteRepository contrato CRUD para cotizaciones.
type QuoteRepository interface {
	List() ([]*entity.Quote, error)
	GetByID(id string) (*entity.Quote, error)
	Create(q *entity.Quote) error
	Update(q *entity.Quote) error
	Delete(id string) error
}

// DeliveryNoteRepository contrato CRUD para notas de entrega.
type DeliveryNoteRepository interface {
	List() ([]*entity.DeliveryNote, error)
	GetByID(id string) (*entity.DeliveryNote, error)
	Create(n *entity.DeliveryNote) error
	Update(n *entity.DeliveryNote) error
	Delete(id string) error
}
