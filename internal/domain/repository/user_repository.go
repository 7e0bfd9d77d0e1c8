package repository

import (
	"time"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	// Deactivate baja lógica: marca inactivo en lugar de borrar.
	Deactivate(id string) error
	UpdateLastLogin(id string, at time.Time) error
	Count() (int, error)
}
