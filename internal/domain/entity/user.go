package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleVendedor   = "vendedor"
	RoleAlmacenero = "almacenero"
	RoleContador   = "contador"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, vendedor, almacenero, contador
	Active       bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor identifica al usuario que ejecuta una operación (extraído del token).
// Todas las operaciones de ciclo de vida lo reciben para permisos y auditoría.
type Actor struct {
	ID   string
	Name string
	Role string
}
