package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/pyme-api/internal/domain/entity"
	"github.com/jhoicas/pyme-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQLite.
type ProductRepo struct {
	db *sql.DB
}

const productColumns = `id, name, barcode, category, supplier_id, description,
	purchase_price, selling_price, tax_rate, stock, reorder_level, active, created_at, updated_at`

// List lista todos los productos, más recientes primero.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	rows, err := r.db.Query(`SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Create inserta un producto con binding de parámetros.
func (r *ProductRepo) Create(p *entity.Product) error {
	_, err := r.db.Exec(`
		INSERT INTO products (`+productColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Barcode, p.Category, p.SupplierID, p.Description,
		fmtDec(p.PurchasePrice), fmtDec(p.SellingPrice), fmtDec(p.TaxRate),
		p.Stock, nullableInt(p.ReorderLevel), boolToInt(p.Active),
		fmtTime(p.CreatedAt), fmtTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insertar producto: %w", err)
	}
	return nil
}

// Update reemplaza el registro por id. Id inexistente no es error.
func (r *ProductRepo) Update(p *entity.Product) error {
	_, err := r.db.Exec(`
		UPDATE products SET name = ?, barcode = ?, category = ?, supplier_id = ?, description = ?,
			purchase_price = ?, selling_price = ?, tax_rate = ?, stock = ?, reorder_level = ?,
			active = ?, updated_at = ?
		WHERE id = ?`,
		p.Name, p.Barcode, p.Category, p.SupplierID, p.Description,
		fmtDec(p.PurchasePrice), fmtDec(p.SellingPrice), fmtDec(p.TaxRate),
		p.Stock, nullableInt(p.ReorderLevel), boolToInt(p.Active),
		fmtTime(p.UpdatedAt), p.ID,
	)
	if err != nil {
		return fmt.Errorf("actualizar producto: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	if _, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id); err != nil {
		return fmt.Errorf("eliminar producto: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	var purchase, selling, tax, createdAt, updatedAt string
	var reorder sql.NullInt64
	var active int
	if err := row.Scan(&p.ID, &p.Name, &p.Barcode, &p.Category, &p.SupplierID, &p.Description,
		&purchase, &selling, &tax, &p.Stock, &reorder, &active, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("escanear producto: %w", err)
	}
	p.PurchasePrice = parseDec(purchase)
	p.SellingPrice = parseDec(selling)
	p.TaxRate = parseDec(tax)
	p.ReorderLevel = intPtr(reorder)
	p.Active = active != 0
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}
