package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// Permissions es el conjunto de capacidades independientes de un usuario.
type Permissions struct {
	ManageProducts  bool `json:"manage_products"`
	ManageSales     bool `json:"manage_sales"`
	ManagePurchases bool `json:"manage_purchases"`
	ManageClients   bool `json:"manage_clients"`
	ManageSuppliers bool `json:"manage_suppliers"`
	ManageUsers     bool `json:"manage_users"`
	ManageSettings  bool `json:"manage_settings"`
}

// AllPermissions devuelve el conjunto con todas las capacidades activas.
func AllPermissions() Permissions {
	return Permissions{
		ManageProducts:  true,
		ManageSales:     true,
		ManagePurchases: true,
		ManageClients:   true,
		ManageSuppliers: true,
		ManageUsers:     true,
		ManageSettings:  true,
	}
}

// User representa un usuario del sistema.
type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"password_hash"` // bcrypt, nunca texto plano
	FullName     string      `json:"full_name,omitempty"`
	Role         string      `json:"role"` // admin, manager, employee
	Permissions  Permissions `json:"permissions"`
	Active       bool        `json:"active"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
