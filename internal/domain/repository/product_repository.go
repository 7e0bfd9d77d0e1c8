package repository

import "github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByBarcode busca por código de barras exacto; nil si no existe.
	GetByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List() ([]*entity.Product, error)
	// Search busca por nombre o código de barras (autocompletado), máximo limit filas.
	Search(query string, limit int) ([]*entity.Product, error)
	CountByCategory(categoryID string) (int, error)

	// DecrementStock descuenta qty del agregado solo si alcanza
	// (compare-and-swap sobre stock_actual). Devuelve ErrInsufficientStock
	// si el stock es menor que qty.
	DecrementStock(id string, qty int) error
	// IncrementStock suma qty al agregado (reposición o reversa de venta).
	IncrementStock(id string, qty int) error
}
