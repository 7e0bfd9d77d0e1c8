package memstore

import (
	"sort"
	"time"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

// StockRepository implementación en memoria del stock por (producto, depósito).
type StockRepository struct {
	s *Store
}

var _ repository.StockRepository = (*StockRepository)(nil)

func NewStockRepository(s *Store) *StockRepository {
	return &StockRepository{s: s}
}

func (r *StockRepository) Get(productID, warehouseID string) (*entity.StockEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.stock[pairKey(productID, warehouseID)]
	if !ok {
		return &entity.StockEntry{ProductID: productID, WarehouseID: warehouseID}, nil
	}
	return cloneStockEntry(e), nil
}

func (r *StockRepository) IncrementEntry(productID, warehouseID string, qty int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := pairKey(productID, warehouseID)
	e, ok := r.s.stock[key]
	if !ok {
		e = &entity.StockEntry{ProductID: productID, WarehouseID: warehouseID}
		r.s.stock[key] = e
	}
	e.Quantity += qty
	e.UpdatedAt = time.Now()
	return nil
}

func (r *StockRepository) ListByProduct(productID string) ([]*entity.StockEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.StockEntry, 0)
	for _, e := range r.s.stock {
		if e.ProductID == productID {
			out = append(out, cloneStockEntry(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WarehouseID < out[j].WarehouseID })
	return out, nil
}
