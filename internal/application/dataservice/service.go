package dataservice

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pyme-api/internal/domain/entity"
	"github.com/jhoicas/pyme-api/internal/domain/repository"
	"github.com/jhoicas/pyme-api/pkg/logger"
)

// Credenciales del administrador provisionado en el primer arranque.
// Es la credencial de bootstrap documentada de la aplicación, pensada para
// cambiarse en el primer login; el hash se genera al sembrar, nunca se
// persiste la contraseña en claro.
const (
	DefaultAdminID       = "00000000-0000-0000-0000-000000000001"
	DefaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// Service es la fachada uniforme de acceso a datos sobre el Store inyectado.
//
// Política de fallos, heredada a propósito en todo el servicio:
//   - las lecturas nunca rompen al caller: un error se registra y degrada a
//     lista vacía o nil (el caller no distingue "vacío" de "falló la carga");
//   - las escrituras devuelven el error para que el caller lo muestre.
type Service struct {
	store repository.Store
	log   *logger.Logger

	defaultLowStock int
}

// Options parámetros de construcción del servicio.
type Options struct {
	// DefaultLowStock umbral global inicial de stock bajo al sembrar la configuración.
	DefaultLowStock int
}

// New construye la fachada y ejecuta la siembra idempotente de primer arranque.
func New(store repository.Store, log *logger.Logger, opts Options) *Service {
	if opts.DefaultLowStock <= 0 {
		opts.DefaultLowStock = 5
	}
	s := &Service{store: store, log: log, defaultLowStock: opts.DefaultLowStock}
	s.seed()
	return s
}

// seed provisiona el administrador por defecto si no hay usuarios y la
// configuración de empresa si no existe. Seguro de ejecutar en cada arranque:
// solo actúa sobre colecciones vacías/ausentes.
func (s *Service) seed() {
	users, err := s.store.Users().List()
	if err != nil {
		s.log.Error().Err(err).Msg("siembra: no se pudo leer la colección de usuarios")
	} else if len(users) == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			s.log.Error().Err(err).Msg("siembra: hash de contraseña")
		} else {
			now := time.Now()
			admin := &entity.User{
				ID:           DefaultAdminID,
				Username:     DefaultAdminUsername,
				PasswordHash: string(hash),
				FullName:     "Administrador",
				Role:         entity.RoleAdmin,
				Permissions:  entity.AllPermissions(),
				Active:       true,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := s.store.Users().Create(admin); err != nil {
				s.log.Error().Err(err).Msg("siembra: crear administrador por defecto")
			} else {
				s.log.Info().Str("username", DefaultAdminUsername).Msg("administrador por defecto provisionado")
			}
		}
	}

	cfg, err := s.store.Settings().Get()
	if err != nil {
		s.log.Error().Err(err).Msg("siembra: no se pudo leer la configuración")
		return
	}
	if cfg == nil {
		if err := s.store.Settings().Save(&entity.CompanySettings{
			Name:              "Mi Empresa",
			Currency:          "COP",
			LowStockThreshold: s.defaultLowStock,
			UpdatedAt:         time.Now(),
		}); err != nil {
			s.log.Error().Err(err).Msg("siembra: guardar configuración por defecto")
		}
	}
}

// Settings devuelve la configuración de empresa; nunca nil (degrada a defaults).
func (s *Service) Settings() *entity.CompanySettings {
	cfg, err := s.store.Settings().Get()
	if err != nil {
		s.log.Error().Err(err).Msg("leer configuración")
	}
	if cfg == nil {
		return &entity.CompanySettings{Currency: "COP", LowStockThreshold: s.defaultLowStock}
	}
	return cfg
}

// SaveSettings reescribe la configuración de empresa.
func (s *Service) SaveSettings(cfg *entity.CompanySettings) error {
	cfg.UpdatedAt = time.Now()
	return s.store.Settings().Save(cfg)
}

// newID genera el identificador de un registro nuevo.
func newID() string {
	return uuid.New().String()
}

// stamp completa id y fechas de creación si vienen vacíos.
func stamp(id *string, createdAt, updatedAt *time.Time) {
	now := time.Now()
	if *id == "" {
		*id = newID()
	}
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}

// touch actualiza la fecha de modificación.
func touch(updatedAt *time.Time) {
	*updatedAt = time.Now()
}
