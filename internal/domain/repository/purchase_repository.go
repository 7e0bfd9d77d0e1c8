package repository

import (
	"time"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para Purchase (DIP).
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	// List devuelve compras ordenadas por fecha descendente, máximo limit filas.
	List(limit int) ([]*entity.Purchase, error)
	// MarkReceived pasa la compra de pendiente a recibida sellando receptor y
	// fecha, solo si estaba pendiente (fetch-and-set condicional).
	// Devuelve ErrInvalidState si no estaba pendiente.
	MarkReceived(id, receivedBy string, at time.Time) error
}
