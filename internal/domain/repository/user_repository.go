package repository

import "github.com/jhoicas/pyme-api/internal/domain/entity"

// UserRepository contrato CRUD para usuarios, más búsqueda por username para login.
type UserRepository interface {
	List() ([]*entity.User, error)
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Create(u *entity.User) error
	Update(u *entity.User) error
	Delete(id string) error
}
