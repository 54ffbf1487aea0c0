package dto

import (
	"time"

	"github.com/jhoicas/pyme-api/internal/domain/entity"
)

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse representación pública de un usuario (sin hash).
type UserResponse struct {
	ID          string             `json:"id"`
	Username    string             `json:"username"`
	FullName    string             `json:"full_name,omitempty"`
	Role        string             `json:"role"`
	Permissions entity.Permissions `json:"permissions"`
	Active      bool               `json:"active"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest alta de usuario (solo admin).
type CreateUserRequest struct {
	Username    string              `json:"username"`
	Password    string              `json:"password"`
	FullName    string              `json:"full_name"`
	Role        string              `json:"role"`
	Permissions *entity.Permissions `json:"permissions,omitempty"`
	Active      *bool               `json:"active,omitempty"`
}

// UpdateUserRequest modificación de usuario. Password vacío = sin cambio.
type UpdateUserRequest struct {
	Password    string              `json:"password,omitempty"`
	FullName    *string             `json:"full_name,omitempty"`
	Role        *string             `json:"role,omitempty"`
	Permissions *entity.Permissions `json:"permissions,omitempty"`
	Active      *bool               `json:"active,omitempty"`
}
