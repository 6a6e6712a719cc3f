package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User representa un usuario de la API (solo para login y protección de rutas).
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
