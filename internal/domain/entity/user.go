package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole indica si el rol pertenece al conjunto admitido.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User representa una cuenta de la aplicación (personal que consulta nóminas o administra cuentas).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, user
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
