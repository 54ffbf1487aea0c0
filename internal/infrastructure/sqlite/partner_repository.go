package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/pyme-api/internal/domain/entity"
	"github.com/jhoicas/pyme-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)
var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre SQLite.
type ClientRepo struct {
	db *sql.DB
}

const clientColumns = `id, name, email, phone, address, city, tax_id, notes, created_at, updated_at`

// List lista todos los clientes, más recientes primero.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	rows, err := r.db.Query(`SELECT ` + clientColumns + ` FROM clients ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		var createdAt, updatedAt string
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City,
			&c.TaxID, &c.Notes, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("escanear cliente: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		c.UpdatedAt = parseTime(updatedAt)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	var c entity.Client
	var createdAt, updatedAt string
	err := r.db.QueryRow(`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City, &c.TaxID, &c.Notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	c.CreatedAt = parseTime(createdAt)
	c.UpdatedAt = parseTime(updatedAt)
	return &c, nil
}

// Create inserta un cliente.
func (r *ClientRepo) Create(c *entity.Client) error {
	_, err := r.db.Exec(`
		INSERT INTO clients (`+clientColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.City, c.TaxID, c.Notes,
		fmtTime(c.CreatedAt), fmtTime(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insertar cliente: %w", err)
	}
	return nil
}

// Update reemplaza el registro por id.
func (r *ClientRepo) Update(c *entity.Client) error {
	_, err := r.db.Exec(`
		UPDATE clients SET name = ?, email = ?, phone = ?, address = ?, city = ?, tax_id = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		c.Name, c.Email, c.Phone, c.Address, c.City, c.TaxID, c.Notes, fmtTime(c.UpdatedAt), c.ID,
	)
	if err != nil {
		return fmt.Errorf("actualizar cliente: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(id string) error {
	if _, err := r.db.Exec(`DELETE FROM clients WHERE id = ?`, id); err != nil {
		return fmt.Errorf("eliminar cliente: %w", err)
	}
	return nil
}

// SupplierRepo implementación del puerto SupplierRepository sobre SQLite.
type SupplierRepo struct {
	db *sql.DB
}

const supplierColumns = `id, name, contact_name, email, phone, address, city, tax_id, notes, created_at, updated_at`

// List lista todos los proveedores, más recientes primero.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	rows, err := r.db.Query(`SELECT ` + supplierColumns + ` FROM suppliers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listar proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		var createdAt, updatedAt string
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactName, &s.Email, &s.Phone, &s.Address,
			&s.City, &s.TaxID, &s.Notes, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("escanear proveedor: %w", err)
		}
		s.CreatedAt = parseTime(createdAt)
		s.UpdatedAt = parseTime(updatedAt)
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	var s entity.Supplier
	var createdAt, updatedAt string
	err := r.db.QueryRow(`SELECT `+supplierColumns+` FROM suppliers WHERE id = ?`, id).Scan(
		&s.ID, &s.Name, &s.ContactName, &s.Email, &s.Phone, &s.Address, &s.City, &s.TaxID, &s.Notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener proveedor: %w", err)
	}
	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}

// Create inserta un proveedor.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	_, err := r.db.Exec(`
		INSERT INTO suppliers (`+supplierColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.ContactName, s.Email, s.Phone, s.Address, s.City, s.TaxID, s.Notes,
		fmtTime(s.CreatedAt), fmtTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insertar proveedor: %w", err)
	}
	return nil
}

// Update reemplaza el registro por id.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	_, err := r.db.Exec(`
		UPDATE suppliers SET name = ?, contact_name = ?, email = ?, phone = ?, address = ?, city = ?, tax_id = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		s.Name, s.ContactName, s.Email, s.Phone, s.Address, s.City, s.TaxID, s.Notes, fmtTime(s.UpdatedAt), s.ID,
	)
	if err != nil {
		return fmt.Errorf("actualizar proveedor: %w", err)
	}
	return nil
}

// Delete elimina un proveedor por ID.
func (r *SupplierRepo) Delete(id string) error {
	if _, err := r.db.Exec(`DELETE FROM suppliers WHERE id = ?`, id); err != nil {
		return fmt.Errorf("eliminar proveedor: %w", err)
	}
	return nil
}
