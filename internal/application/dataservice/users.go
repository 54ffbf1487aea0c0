package dataservice

import "github.com/jhoicas/pyme-api/internal/domain/entity"

// Operaciones sobre usuarios. La unicidad de username la garantiza el
// repositorio (constraint en SQLite, verificación en la capa de auth).

// ListUsers devuelve todos los usuarios. Nunca falla hacia el caller.
func (s *Service) ListUsers() []*entity.User {
	list, err := s.store.Users().List()
	if err != nil {
		s.log.Error().Err(err).Msg("listar usuarios")
		return []*entity.User{}
	}
	return list
}

// GetUser devuelve nil si el id no existe o la lectura falla.
func (s *Service) GetUser(id string) *entity.User {
	u, err := s.store.Users().GetByID(id)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("obtener usuario")
		return nil
	}
	return u
}

// GetUserByUsername devuelve nil si el username no existe o la lectura falla.
func (s *Service) GetUserByUsername(username string) *entity.User {
	u, err := s.store.Users().GetByUsername(username)
	if err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("obtener usuario por username")
		return nil
	}
	return u
}

// CreateUser asigna id y fechas si faltan y persiste.
func (s *Service) CreateUser(u *entity.User) (*entity.User, error) {
	stamp(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err := s.store.Users().Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateUser reemplaza el registro por id.
func (s *Service) UpdateUser(u *entity.User) error {
	touch(&u.UpdatedAt)
	return s.store.Users().Update(u)
}

// DeleteUser elimina por id.
func (s *Service) DeleteUser(id string) error {
	return s.store.Users().Delete(id)
}
