package repository

import "github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// List devuelve ventas ordenadas por fecha descendente, máximo limit filas.
	List(limit int) ([]*entity.Sale, error)
	ListByCustomer(customerID string) ([]*entity.Sale, error)
	// MarkVoided pasa la venta a anulada solo si aún no lo está
	// (fetch-and-set condicional). Devuelve ErrInvalidState si ya estaba anulada.
	MarkVoided(id string) error
}
