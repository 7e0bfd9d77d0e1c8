package dto

import (
	"time"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
)

// RegisterRequest alta de usuario (solo admin).
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"nombre"`
	Role     string `json:"rol"`
}

// LoginRequest credenciales de ingreso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario sin hash de contraseña.
type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"nombre"`
	Role      string     `json:"rol"`
	Active    bool       `json:"activo"`
	LastLogin *time.Time `json:"ultimo_acceso,omitempty"`
	CreatedAt time.Time  `json:"fecha_creacion"`
}

// LoginResponse token + usuario + permisos del rol.
type LoginResponse struct {
	Token       string       `json:"token"`
	User        UserResponse `json:"usuario"`
	Permissions []string     `json:"permisos"`
}

// UpdateUserRequest edición de usuario. Los punteros distinguen "no enviado" de "vacío".
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"nombre"`
	Role     *string `json:"rol"`
	Active   *bool   `json:"activo"`
}

// ToUserResponse convierte la entidad a respuesta del API.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Active:    u.Active,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
