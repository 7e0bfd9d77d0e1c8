package memstore

import (
	"sort"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

// SaleRepository implementación en memoria del puerto de ventas.
type SaleRepository struct {
	s *Store
}

var _ repository.SaleRepository = (*SaleRepository)(nil)

func NewSaleRepository(s *Store) *SaleRepository {
	return &SaleRepository{s: s}
}

func (r *SaleRepository) Create(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sales[sale.ID] = cloneSale(sale)
	return nil
}

func (r *SaleRepository) GetByID(id string) (*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	return cloneSale(sale), nil
}

func (r *SaleRepository) List(limit int) ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Sale, 0, len(r.s.sales))
	for _, sale := range r.s.sales {
		out = append(out, cloneSale(sale))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *SaleRepository) ListByCustomer(customerID string) ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Sale, 0)
	for _, sale := range r.s.sales {
		if sale.CustomerID == customerID {
			out = append(out, cloneSale(sale))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// MarkVoided anula solo si aún no estaba anulada, como el UPDATE condicional
// de Postgres.
func (r *SaleRepository) MarkVoided(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	if sale.Status == entity.SaleStatusVoided {
		return domain.ErrInvalidState
	}
	sale.Status = entity.SaleStatusVoided
	return nil
}
