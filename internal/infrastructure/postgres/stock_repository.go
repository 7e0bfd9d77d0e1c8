package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador para el stock por depósito. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get devuelve la fila del par (producto, depósito). Cantidad cero si aún no existe.
func (r *StockRepo) Get(productID, warehouseID string) (*entity.StockEntry, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, location, updated_at
		FROM product_stock WHERE product_id = $1 AND warehouse_id = $2`
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&e.ProductID, &e.WarehouseID, &e.Quantity, &e.Location, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockEntry{ProductID: productID, WarehouseID: warehouseID}, nil
		}
		return nil, fmt.Errorf("get stock entry: %w", err)
	}
	return &e, nil
}

// IncrementEntry suma qty a la fila del par, creándola si no existe (upsert).
func (r *StockRepo) IncrementEntry(productID, warehouseID string, qty int) error {
	query := `
		INSERT INTO product_stock (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = product_stock.quantity + EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, productID, warehouseID, qty)
	if err != nil {
		return fmt.Errorf("increment stock entry: %w", err)
	}
	return nil
}

// ListByProduct devuelve las filas de stock de un producto en todos los depósitos.
func (r *StockRepo) ListByProduct(productID string) ([]*entity.StockEntry, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, location, updated_at
		FROM product_stock WHERE product_id = $1 ORDER BY warehouse_id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ProductID, &e.WarehouseID, &e.Quantity, &e.Location, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
