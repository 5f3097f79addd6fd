package entity

import "time"

// Roles válidos para User. El rol se fija al crear el usuario; no hay
// workflow de cambio de rol para la sesión propia.
const (
	RoleAdmin    = "admin"
	RoleStaff    = "staff"
	RoleCustomer = "customer"
)

// User representa un usuario de la tienda (datos semilla de la demo o registrado).
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"` // clave única para login
	PasswordHash string    `json:"password_hash"` // bcrypt; la demo original guardaba texto plano
	Name         string    `json:"name"`
	Role         string    `json:"role"` // admin, staff, customer
	Avatar       string    `json:"avatar,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
