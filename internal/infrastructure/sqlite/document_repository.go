package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/pyme-api/internal/domain/entity"
	"github.com/jhoicas/pyme-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)
var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)
var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)
var _ repository.QuoteRepository = (*QuoteRepo)(nil)
var _ repository.DeliveryNoteRepository = (*DeliveryNoteRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre SQLite.
// Las líneas van como JSON en la columna items; JSON ilegible degrada a lista vacía.
type SaleRepo struct {
	db *sql.DB
}

const saleColumns = `id, client_id, items, subtotal, tax_total, total, payment_status, payment_method, created_at, updated_at`

func scanSale(row rowScanner) (*entity.Sale, error) {
	var s entity.Sale
	var items, subtotal, taxTotal, total, createdAt, updatedAt string
	if err := row.Scan(&s.ID, &s.ClientID, &items, &subtotal, &taxTotal, &total,
		&s.PaymentStatus, &s.PaymentMethod, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	s.Items = unmarshalItems(items)
	s.Subtotal = parseDec(subtotal)
	s.TaxTotal = parseDec(taxTotal)
	s.Total = parseDec(total)
	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}

// List lista todas las ventas, más recientes primero.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	rows, err := r.db.Query(`SELECT ` + saleColumns + ` FROM sales ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear venta: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByID obtiene una venta por ID. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, err := scanSale(r.db.QueryRow(`SELECT `+saleColumns+` FROM sales WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener venta: %w", err)
	}
	return s, nil
}

// Create inserta una venta.
func (r *SaleRepo) Create(s *entity.Sale) error {
	_, err := r.db.Exec(`
		INSERT INTO sales (`+saleColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.ClientID, marshalItems(s.Items), fmtDec(s.Subtotal), fmtDec(s.TaxTotal), fmtDec(s.Total),
		s.PaymentStatus, s.PaymentMethod, fmtTime(s.CreatedAt), fmtTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insertar venta: %w", err)
	}
	return nil
}

// Update reemplaza el registro por id.
func (r *SaleRepo) Update(s *entity.Sale) error {
	_, err := r.db.Exec(`
		UPDATE sales SET client_id = ?, items = ?, subtotal = ?, tax_total = ?, total = ?,
			payment_status = ?, payment_method = ?, updated_at = ?
		WHERE id = ?`,
		s.ClientID, marshalItems(s.Items), fmtDec(s.Subtotal), fmtDec(s.TaxTotal), fmtDec(s.Total),
		s.PaymentStatus, s.PaymentMethod, fmtTime(s.UpdatedAt), s.ID,
	)
	if err != nil {
		return fmt.Errorf("actualizar venta: %w", err)
	}
	return nil
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(id string) error {
	if _, err := r.db.Exec(`DELETE FROM sales WHERE id = ?`, id); err != nil {
		return fmt.Errorf("eliminar venta: %w", err)
	}
	return nil
}

// PurchaseRepo implementación del puerto PurchaseRepository sobre SQLite.
type PurchaseRepo struct {
	db *sql.DB
}

const purchaseColumns = `id, supplier_id, items, subtotal, tax_total, total, status, created_at, updated_at`

func scanPurchase(row rowScanner) (*entity.Purchase, error) {
	var p entity.Purchase
	var items, subtotal, taxTotal, total, createdAt, updatedAt string
	if err := row.Scan(&p.ID, &p.SupplierID, &items, &subtotal, &taxTotal, &total,
		&p.Status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.Items = unmarshalItems(items)
	p.Subtotal = parseDec(subtotal)
	p.TaxTotal = parseDec(taxTotal)
	p.Total = parseDec(total)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

// List lista todas las compras, más recientes primero.
func (r *PurchaseRepo) List() ([]*entity.Purchase, error) {
	rows, err := r.db.Query(`SELECT ` + purchaseColumns + ` FROM purchases ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listar compras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear compra: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene una compra por ID. Devuelve (nil, nil) si no existe.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	p, err := scanPurchase(r.db.QueryRow(`SELECT `+purchaseColumns+` FROM purchases WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener compra: %w", err)
	}
	return p, nil
}

// Create inserta una compra.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	_, err := r.db.Exec(`
		INSERT INTO purchases (`+purchaseColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.SupplierID, marshalItems(p.Items), fmtDec(p.Subtotal), fmtDec(p.TaxTotal), fmtDec(p.Total),
		p.Status, fmtTime(p.CreatedAt), fmtTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insertar compra: %w", err)
	}
	return nil
}

// Update reemplaza el registro por id.
func (r *PurchaseRepo) Update(p *entity.Purchase) error {
	_, err := r.db.Exec(`
		UPDATE purchases SET supplier_id = ?, items = ?, subtotal = ?, tax_total = ?, total = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		p.SupplierID, marshalItems(p.Items), fmtDec(p.Subtotal), fmtDec(p.TaxTotal), fmtDec(p.Total),
		p.Status, fmtTime(p.UpdatedAt), p.ID,
	)
	if err != nil {
		return fmt.Errorf("actualizar compra: %w", err)
	}
	return nil
}

// Delete elimina una compra por ID.
func (r *PurchaseRepo) Delete(id string) error {
	if _, err := r.db.Exec(`DELETE FROM purchases WHERE id = ?`, id); err != nil {
		return fmt.Errorf("eliminar compra: %w", err)
	}
	return nil
}

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre SQLite.
type PurchaseOrderRepo struct {
	db *sql.DB
}

const orderColumns = `id, supplier_id, items, subtotal, tax_total, total, status, expected_date, created_at, updated_at`

func scanOrder(row rowScanner) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	var items, subtotal, taxTotal, total, createdAt, updatedAt string
	var expected sql.NullString
	if err := row.Scan(&o.ID, &o.SupplierID, &items, &subtotal, &taxTotal, &total,
		&o.Status, &expected, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	o.Items = unmarshalItems(items)
	o.Subtotal = parseDec(subtotal)
	o.TaxTotal = parseDec(taxTotal)
	o.Total = parseDec(total)
	o.ExpectedDate = parseTimePtr(expected)
	o.CreatedAt = parseTime(createdAt)
	o.UpdatedAt = parseTime(updatedAt)
	return &o, nil
}

// List lista todas las órdenes de compra, más recientes primero.
func (r *PurchaseOrderRepo) List() ([]*entity.PurchaseOrder, error) {
	rows, err := r.db.Query(`SELECT ` + orderColumns + ` FROM purchase_orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes de compra: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear orden de compra: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// GetByID obtiene una orden por ID. Devuelve (nil, nil) si no existe.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	o, err := scanOrder(r.db.QueryRow(`SELECT `+orderColumns+` FROM purchase_orders WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener orden de compra: %w", err)
	}
	return o, nil
}

// Create inserta una orden de compra.
func (r *PurchaseOrderRepo) Create(o *entity.PurchaseOrder) error {
	_, err := r.db.Exec(`
		INSERT INTO purchase_orders (`+orderColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.SupplierID, marshalItems(o.Items), fmtDec(o.Subtotal), fmtDec(o.TaxTotal), fmtDec(o.Total),
		o.Status, fmtTimePtr(o.ExpectedDate), fmtTime(o.CreatedAt), fmtTime(o.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insertar orden de compra: %w", err)
	}
	return nil
}

// Update reemplaza el registro por id.
func (r *PurchaseOrderRepo) Update(o *entity.PurchaseOrder) error {
	_, err := r.db.Exec(`
		UPDATE purchase_orders SET supplier_id = ?, items = ?, subtotal = ?, tax_total = ?, total = ?,
			status = ?, expected_date = ?, updated_at = ?
		WHERE id = ?`,
		o.SupplierID, marshalItems(o.Items), fmtDec(o.Subtotal), fmtDec(o.TaxTotal), fmtDec(o.Total),
		o.Status, fmtTimePtr(o.ExpectedDate), fmtTime(o.UpdatedAt), o.ID,
	)
	if err != nil {
		return fmt.Errorf("actualizar orden de compra: %w", err)
	}
	return nil
}

// Delete elimina una orden por ID.
func (r *PurchaseOrderRepo) Delete(id string) error {
	if _, err := r.db.Exec(`DELETE FROM purchase_orders WHERE id = ?`, id); err != nil {
		return fmt.Errorf("eliminar orden de compra: %w", err)
	}
	return nil
}

// QuoteRepo implementación del puerto QuoteRepository sobre SQLite.
type QuoteRepo struct {
	db *sql.DB
}

const quoteColumns = `id, client_id, items, subtotal, tax_total, total, status, valid_until, created_at, updated_at`

func scanQuote(row rowScanner) (*entity.Quote, error) {
	var q entity.Quote
	var items, subtotal, taxTotal, total, validUntil, createdAt, updatedAt string
	if err := row.Scan(&q.ID, &q.ClientID, &items, &subtotal, &taxTotal, &total,
		&q.Status, &validUntil, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	q.Items = unmarshalItems(items)
	q.Subtotal = parseDec(subtotal)
	q.TaxTotal = parseDec(taxTotal)
	q.Total = parseDec(total)
	q.ValidUntil = parseTime(validUntil)
	q.CreatedAt = parseTime(createdAt)
	q.UpdatedAt = parseTime(updatedAt)
	return &q, nil
}

// List lista todas las cotizaciones, más recientes primero.
func (r *QuoteRepo) List() ([]*entity.Quote, error) {
	rows, err := r.db.Query(`SELECT ` + quoteColumns + ` FROM quotes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listar cotizaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear cotización: %w", err)
		}
		list = append(list, q)
	}
	return list, rows.Err()
}

// GetByID obtiene una cotización por ID. Devuelve (nil, nil) si no existe.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	q, err := scanQuote(r.db.QueryRow(`SELECT `+quoteColumns+` FROM quotes WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener cotización: %w", err)
	}
	return q, nil
}

// Create inserta una cotización.
func (r *QuoteRepo) Create(q *entity.Quote) error {
	_, err := r.db.Exec(`
		INSERT INTO quotes (`+quoteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.ClientID, marshalItems(q.Items), fmtDec(q.Subtotal), fmtDec(q.TaxTotal), fmtDec(q.Total),
		q.Status, fmtTime(q.ValidUntil), fmtTime(q.CreatedAt), fmtTime(q.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insertar cotización: %w", err)
	}
	return nil
}

// Update reemplaza el registro por id.
func (r *QuoteRepo) Update(q *entity.Quote) error {
	_, err := r.db.Exec(`
		UPDATE quotes SET client_id = ?, items = ?, subtotal = ?, tax_total = ?, total = ?,
			status = ?, valid_until = ?, updated_at = ?
		WHERE id = ?`,
		q.ClientID, marshalItems(q.Items), fmtDec(q.Subtotal), fmtDec(q.TaxTotal), fmtDec(q.Total),
		q.Status, fmtTime(q.ValidUntil), fmtTime(q.UpdatedAt), q.ID,
	)
	if err != nil {
		return fmt.Errorf("actualizar cotización: %w", err)
	}
	return nil
}

// Delete elimina una cotización por ID.
func (r *QuoteRepo) Delete(id string) error {
	if _, err := r.db.Exec(`DELETE FROM quotes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("eliminar cotización: %w", err)
	}
	return nil
}

// DeliveryNoteRepo implementación del puerto DeliveryNoteRepository sobre SQLite.
type DeliveryNoteRepo struct {
	db *sql.DB
}

const noteColumns = `id, client_id, sale_id, items, status, delivered_at, created_at, updated_at`

func scanNote(row rowScanner) (*entity.DeliveryNote, error) {
	var n entity.DeliveryNote
	var items, createdAt, updatedAt string
	var delivered sql.NullString
	if err := row.Scan(&n.ID, &n.ClientID, &n.SaleID, &items, &n.Status,
		&delivered, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	n.Items = unmarshalItems(items)
	n.DeliveredAt = parseTimePtr(delivered)
	n.CreatedAt = parseTime(createdAt)
	n.UpdatedAt = parseTime(updatedAt)
	return &n, nil
}

// List lista todas las notas de entrega, más recientes primero.
func (r *DeliveryNoteRepo) List() ([]*entity.DeliveryNote, error) {
	rows, err := r.db.Query(`SELECT ` + noteColumns + ` FROM delivery_notes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listar notas de entrega: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeliveryNote
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear nota de entrega: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// GetByID obtiene una nota por ID. Devuelve (nil, nil) si no existe.
func (r *DeliveryNoteRepo) GetByID(id string) (*entity.DeliveryNote, error) {
	n, err := scanNote(r.db.QueryRow(`SELECT `+noteColumns+` FROM delivery_notes WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener nota de entrega: %w", err)
	}
	return n, nil
}

// Create inserta una nota de entrega.
func (r *DeliveryNoteRepo) Create(n *entity.DeliveryNote) error {
	_, err := r.db.Exec(`
		INSERT INTO delivery_notes (`+noteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.ClientID, n.SaleID, marshalItems(n.Items), n.Status,
		fmtTimePtr(n.DeliveredAt), fmtTime(n.CreatedAt), fmtTime(n.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insertar nota de entrega: %w", err)
	}
	return nil
}

// Update reemplaza el registro por id.
func (r *DeliveryNoteRepo) Update(n *entity.DeliveryNote) error {
	_, err := r.db.Exec(`
		UPDATE delivery_notes SET client_id = ?, sale_id = ?, items = ?, status = ?, delivered_at = ?, updated_at = ?
		WHERE id = ?`,
		n.ClientID, n.SaleID, marshalItems(n.Items), n.Status,
		fmtTimePtr(n.DeliveredAt), fmtTime(n.UpdatedAt), n.ID,
	)
	if err != nil {
		return fmt.Errorf("actualizar nota de entrega: %w", err)
	}
	return nil
}

// Delete elimina una nota por ID.
func (r *DeliveryNoteRepo) Delete(id string) error {
	if _, err := r.db.Exec(`DELETE FROM delivery_notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("eliminar nota de entrega: %w", err)
	}
	return nil
}
