package repository

import "github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"

// QuoteRepository define el puerto de persistencia para Quote (DIP).
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	GetByID(id string) (*entity.Quote, error)
	// List devuelve presupuestos ordenados por fecha descendente, máximo limit filas.
	List(limit int) ([]*entity.Quote, error)
	// UpdateStatus cambia el estado salvo que el presupuesto ya esté
	// convertido; en ese caso devuelve ErrInvalidState.
	UpdateStatus(id, status string) error
	// MarkConverted pasa el presupuesto a convertido y guarda la venta generada,
	// solo si aún no estaba convertido (fetch-and-set condicional).
	// Devuelve ErrInvalidState si ya estaba convertido.
	MarkConverted(id, saleID string) error
}
