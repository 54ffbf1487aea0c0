package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/pyme-api/internal/domain/entity"
	"github.com/jhoicas/pyme-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo acceso al registro único de configuración (fila id = 1).
type SettingsRepo struct {
	db *sql.DB
}

// Get devuelve la configuración, o (nil, nil) si nunca se ha guardado.
func (r *SettingsRepo) Get() (*entity.CompanySettings, error) {
	var s entity.CompanySettings
	var updatedAt string
	err := r.db.QueryRow(`
		SELECT name, tax_id, address, phone, email, currency, low_stock_threshold, updated_at
		FROM company_settings WHERE id = 1`).Scan(
		&s.Name, &s.TaxID, &s.Address, &s.Phone, &s.Email, &s.Currency, &s.LowStockThreshold, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener configuración: %w", err)
	}
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}

// Save inserta o actualiza la fila única de configuración.
func (r *SettingsRepo) Save(s *entity.CompanySettings) error {
	_, err := r.db.Exec(`
		INSERT INTO company_settings (id, name, tax_id, address, phone, email, currency, low_stock_threshold, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id)
		DO UPDATE SET name = excluded.name, tax_id = excluded.tax_id, address = excluded.address,
			phone = excluded.phone, email = excluded.email, currency = excluded.currency,
			low_stock_threshold = excluded.low_stock_threshold, updated_at = excluded.updated_at`,
		s.Name, s.TaxID, s.Address, s.Phone, s.Email, s.Currency, s.LowStockThreshold, fmtTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("guardar configuración: %w", err)
	}
	return nil
}
