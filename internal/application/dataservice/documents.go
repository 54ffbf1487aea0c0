package dataservice

import "github.com/jhoicas/pyme-api/internal/domain/entity"

// Operaciones sobre documentos comerciales: ventas, compras, órdenes de
// compra, cotizaciones y notas de entrega. Contrato simétrico para todos.

// ListSales devuelve todas las ventas. Nunca falla hacia el caller.
func (s *Service) ListSales() []*entity.Sale {
	list, err := s.store.Sales().List()
	if err != nil {
		s.log.Error().Err(err).Msg("listar ventas")
		return []*entity.Sale{}
	}
	return list
}

// GetSale devuelve nil si el id no existe o la lectura falla.
func (s *Service) GetSale(id string) *entity.Sale {
	sale, err := s.store.Sales().GetByID(id)
	if err != nil {
		s.log.Error().Err(err).Str("sale_id", id).Msg("obtener venta")
		return nil
	}
	return sale
}

// CreateSale asigna id y fechas si faltan y persiste.
func (s *Service) CreateSale(sale *entity.Sale) (*entity.Sale, error) {
	stamp(&sale.ID, &sale.CreatedAt, &sale.UpdatedAt)
	if sale.PaymentStatus == "" {
		sale.PaymentStatus = entity.SalePending
	}
	if err := s.store.Sales().Create(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// UpdateSale reemplaza el registro por id.
func (s *Service) UpdateSale(sale *entity.Sale) error {
	touch(&sale.UpdatedAt)
	return s.store.Sales().Update(sale)
}

// DeleteSale elimina por id.
func (s *Service) DeleteSale(id string) error {
	return s.store.Sales().Delete(id)
}

// ListPurchases devuelve todas las compras. Nunca falla hacia el caller.
func (s *Service) ListPurchases() []*entity.Purchase {
	list, err := s.store.Purchases().List()
	if err != nil {
		s.log.Error().Err(err).Msg("listar compras")
		return []*entity.Purchase{}
	}
	return list
}

// GetPurchase devuelve nil si el id no existe o la lectura falla.
func (s *Service) GetPurchase(id string) *entity.Purchase {
	p, err := s.store.Purchases().GetByID(id)
	if err != nil {
		s.log.Error().Err(err).Str("purchase_id", id).Msg("obtener compra")
		return nil
	}
	return p
}

// CreatePurchase asigna id y fechas si faltan y persiste.
func (s *Service) CreatePurchase(p *entity.Purchase) (*entity.Purchase, error) {
	stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if p.Status == "" {
		p.Status = entity.PurchasePending
	}
	if err := s.store.Purchases().Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePurchase reemplaza el registro por id.
func (s *Service) UpdatePurchase(p *entity.Purchase) error {
	touch(&p.UpdatedAt)
	return s.store.Purchases().Update(p)
}

// DeletePurchase elimina por id.
func (s *Service) DeletePurchase(id string) error {
	return s.store.Purchases().Delete(id)
}

// ListPurchaseOrders devuelve todas las órdenes de compra. Nunca falla hacia el caller.
func (s *Service) ListPurchaseOrders() []*entity.PurchaseOrder {
	list, err := s.store.PurchaseOrders().List()
	if err != nil {
		s.log.Error().Err(err).Msg("listar órdenes de compra")
		return []*entity.PurchaseOrder{}
	}
	return list
}

// GetPurchaseOrder devuelve nil si el id no existe o la lectura falla.
func (s *Service) GetPurchaseOrder(id string) *entity.PurchaseOrder {
	o, err := s.store.PurchaseOrders().GetByID(id)
	if err != nil {
		s.log.Error().Err(err).Str("order_id", id).Msg("obtener orden de compra")
		return nil
	}
	return o
}

// CreatePurchaseOrder asigna id y fechas si faltan y persiste.
func (s *Service) CreatePurchaseOrder(o *entity.PurchaseOrder) (*entity.PurchaseOrder, error) {
	stamp(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if o.Status == "" {
		o.Status = entity.OrderPending
	}
	if err := s.store.PurchaseOrders().Create(o); err != nil {
		return nil, err
	}
	return o, nil
}

// UpdatePurchaseOrder reemplaza el registro por id.
func (s *Service) UpdatePurchaseOrder(o *entity.PurchaseOrder) error {
	touch(&o.UpdatedAt)
	return s.store.PurchaseOrders().Update(o)
}

// DeletePurchaseOrder elimina por id.
func (s *Service) DeletePurchaseOrder(id string) error {
	return s.store.PurchaseOrders().Delete(id)
}

// ListQuotes devuelve todas las cotizaciones. Nunca falla hacia el caller.
func (s *Service) ListQuotes() []*entity.Quote {
	list, err := s.store.Quotes().List()
	if err != nil {
		s.log.Error().Err(err).Msg("listar cotizaciones")
		return []*entity.Quote{}
	}
	return list
}

// GetQuote devuelve nil si el id no existe o la lectura falla.
func (s *Service) GetQuote(id string) *entity.Quote {
	q, err := s.store.Quotes().GetByID(id)
	if err != nil {
		s.log.Error().Err(err).Str("quote_id", id).Msg("obtener cotización")
		return nil
	}
	return q
}

// CreateQuote asigna id y fechas si faltan y persiste.
func (s *Service) CreateQuote(q *entity.Quote) (*entity.Quote, error) {
	stamp(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if q.Status == "" {
		q.Status = entity.QuotePending
	}
	if err := s.store.Quotes().Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

// UpdateQuote reemplaza el registro por id.
func (s *Service) UpdateQuote(q *entity.Quote) error {
	touch(&q.UpdatedAt)
	return s.store.Quotes().Update(q)
}

// DeleteQuote elimina por id.
func (s *Service) DeleteQuote(id string) error {
	return s.store.Quotes().Delete(id)
}

// ListDeliveryNotes devuelve todas las notas de entrega. Nunca falla hacia el caller.
func (s *Service) ListDeliveryNotes() []*entity.DeliveryNote {
	list, err := s.store.DeliveryNotes().List()
	if err != nil {
		s.log.Error().Err(err).Msg("listar notas de entrega")
		return []*entity.DeliveryNote{}
	}
	return list
}

// GetDeliveryNote devuelve nil si el id no existe o la lectura falla.
func (s *Service) GetDeliveryNote(id string) *entity.DeliveryNote {
	n, err := s.store.DeliveryNotes().GetByID(id)
	if err != nil {
		s.log.Error().Err(err).Str("note_id", id).Msg("obtener nota de entrega")
		return nil
	}
	return n
}

// CreateDeliveryNote asigna id y fechas si faltan y persiste.
func (s *Service) CreateDeliveryNote(n *entity.DeliveryNote) (*entity.DeliveryNote, error) {
	stamp(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if n.Status == "" {
		n.Status = entity.DeliveryPending
	}
	if err := s.store.DeliveryNotes().Create(n); err != nil {
		return nil, err
	}
	return n, nil
}

// UpdateDeliveryNote reemplaza el registro por id.
func (s *Service) UpdateDeliveryNote(n *entity.DeliveryNote) error {
	touch(&n.UpdatedAt)
	return s.store.DeliveryNotes().Update(n)
}

// DeleteDeliveryNote elimina por id.
func (s *Service) DeleteDeliveryNote(id string) error {
	return s.store.DeliveryNotes().Delete(id)
}
