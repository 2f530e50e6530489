package entity

import "time"

// Roles persistibles para User. El rol "public" es solo de sesión
// (visitante anónimo) y nunca se guarda en un registro de usuario.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User representa un usuario registrado de la sastrería (cliente o admin).
// El rol es inmutable después de la creación: no existe auto-promoción.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Phone        string
	Role         string // admin, customer
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
