package repository

import "github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"

// StockRepository define el puerto para el stock por (producto, depósito).
// Usado dentro de transacciones para garantizar consistencia con el agregado.
type StockRepository interface {
	// Get devuelve la fila del par; cantidad cero si no existe todavía.
	Get(productID, warehouseID string) (*entity.StockEntry, error)
	// IncrementEntry suma qty a la fila del par, creándola si no existe (upsert).
	IncrementEntry(productID, warehouseID string, qty int) error
	ListByProduct(productID string) ([]*entity.StockEntry, error)
}
