package repository

import "github.com/jhoicas/pyme-api/internal/domain/entity"

// SettingsRepository acceso al registro único de configuración de empresa.
// Get devuelve (nil, nil) si nunca se ha guardado.
type SettingsRepository interface {
	Get() (*entity.CompanySettings, error)
	Save(s *entity.CompanySettings) error
}
