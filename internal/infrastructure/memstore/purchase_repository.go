package memstore

import (
	"sort"
	"time"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

// PurchaseRepository implementación en memoria del puerto de compras.
type PurchaseRepository struct {
	s *Store
}

var _ repository.PurchaseRepository = (*PurchaseRepository)(nil)

func NewPurchaseRepository(s *Store) *PurchaseRepository {
	return &PurchaseRepository{s: s}
}

func (r *PurchaseRepository) Create(purchase *entity.Purchase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.purchases[purchase.ID] = clonePurchase(purchase)
	return nil
}

func (r *PurchaseRepository) GetByID(id string) (*entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.purchases[id]
	if !ok {
		return nil, nil
	}
	return clonePurchase(p), nil
}

func (r *PurchaseRepository) List(limit int) ([]*entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Purchase, 0, len(r.s.purchases))
	for _, p := range r.s.purchases {
		out = append(out, clonePurchase(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// MarkReceived recibe solo si estaba pendiente, como el UPDATE condicional
// de Postgres.
func (r *PurchaseRepository) MarkReceived(id, receivedBy string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.purchases[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Status != entity.PurchaseStatusPending {
		return domain.ErrInvalidState
	}
	p.Status = entity.PurchaseStatusReceived
	p.ReceivedBy = receivedBy
	t := at
	p.ReceivedAt = &t
	return nil
}
