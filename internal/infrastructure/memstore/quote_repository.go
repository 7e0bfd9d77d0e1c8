package memstore

import (
	"sort"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

// QuoteRepository implementación en memoria del puerto de presupuestos.
type QuoteRepository struct {
	s *Store
}

var _ repository.QuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(s *Store) *QuoteRepository {
	return &QuoteRepository{s: s}
}

func (r *QuoteRepository) Create(quote *entity.Quote) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.quotes[quote.ID] = cloneQuote(quote)
	return nil
}

func (r *QuoteRepository) GetByID(id string) (*entity.Quote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q, ok := r.s.quotes[id]
	if !ok {
		return nil, nil
	}
	return cloneQuote(q), nil
}

func (r *QuoteRepository) List(limit int) ([]*entity.Quote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Quote, 0, len(r.s.quotes))
	for _, q := range r.s.quotes {
		out = append(out, cloneQuote(q))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *QuoteRepository) UpdateStatus(id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q, ok := r.s.quotes[id]
	if !ok || q.Status == entity.QuoteStatusConverted {
		// Mismo contrato que el UPDATE condicional de Postgres: cero filas.
		return domain.ErrInvalidState
	}
	q.Status = status
	return nil
}

// MarkConverted convierte solo si aún no estaba convertido, como el UPDATE
// condicional de Postgres.
func (r *QuoteRepository) MarkConverted(id, saleID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q, ok := r.s.quotes[id]
	if !ok {
		return domain.ErrNotFound
	}
	if q.Status == entity.QuoteStatusConverted {
		return domain.ErrInvalidState
	}
	q.Status = entity.QuoteStatusConverted
	q.ConvertedSaleID = saleID
	return nil
}
