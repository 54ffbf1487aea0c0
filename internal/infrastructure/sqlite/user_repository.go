package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/pyme-api/internal/domain"
	"github.com/jhoicas/pyme-api/internal/domain/entity"
	"github.com/jhoicas/pyme-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre SQLite.
// Los siete permisos van como JSON en la columna permissions.
type UserRepo struct {
	db *sql.DB
}

const userColumns = `id, username, password_hash, full_name, role, permissions, active, created_at, updated_at`

func scanUser(row rowScanner) (*entity.User, error) {
	var u entity.User
	var perms, createdAt, updatedAt string
	var active int
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.Role,
		&perms, &active, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	u.Permissions = unmarshalPermissions(perms)
	u.Active = active != 0
	u.CreatedAt = parseTime(createdAt)
	u.UpdatedAt = parseTime(updatedAt)
	return &u, nil
}

// List lista todos los usuarios, más recientes primero.
func (r *UserRepo) List() ([]*entity.User, error) {
	rows, err := r.db.Query(`SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear usuario: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	u, err := scanUser(r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener usuario: %w", err)
	}
	return u, nil
}

// GetByUsername obtiene un usuario por username. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	u, err := scanUser(r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = ?`, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener usuario por username: %w", err)
	}
	return u, nil
}

// Create inserta un usuario. Username duplicado -> domain.ErrUsernameTaken.
func (r *UserRepo) Create(u *entity.User) error {
	_, err := r.db.Exec(`
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.PasswordHash, u.FullName, u.Role,
		marshalPermissions(u.Permissions), boolToInt(u.Active),
		fmtTime(u.CreatedAt), fmtTime(u.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insertar usuario: %w", err)
	}
	return nil
}

// Update reemplaza el registro por id.
func (r *UserRepo) Update(u *entity.User) error {
	_, err := r.db.Exec(`
		UPDATE users SET username = ?, password_hash = ?, full_name = ?, role = ?,
			permissions = ?, active = ?, updated_at = ?
		WHERE id = ?`,
		u.Username, u.PasswordHash, u.FullName, u.Role,
		marshalPermissions(u.Permissions), boolToInt(u.Active), fmtTime(u.UpdatedAt), u.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("actualizar usuario: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(id string) error {
	if _, err := r.db.Exec(`DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("eliminar usuario: %w", err)
	}
	return nil
}

// isUniqueViolation verifica si un error de SQLite es una violación de constraint único.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
