package repository

import (
	"github.com/shopspring/decimal"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// GetByEmail busca por email exacto; nil si no existe.
	GetByEmail(email string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
	// AdjustBalance suma delta (positivo o negativo) al saldo de cuenta corriente.
	AdjustBalance(id string, delta decimal.Decimal) error
}
