package memstore

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

// AuditRepository implementación en memoria del registro de auditoría.
type AuditRepository struct {
	s *Store
}

var _ repository.AuditRepository = (*AuditRepository)(nil)

func NewAuditRepository(s *Store) *AuditRepository {
	return &AuditRepository{s: s}
}

func (r *AuditRepository) Insert(entry *entity.AuditEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *entry
	r.s.audit = append(r.s.audit, &cp)
	return nil
}

func (r *AuditRepository) List(limit int) ([]*entity.AuditEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.AuditEntry, 0, len(r.s.audit))
	for _, e := range r.s.audit {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// StatsRepository calcula los contadores del tablero recorriendo los mapas.
type StatsRepository struct {
	s *Store
}

var _ repository.StatsRepository = (*StatsRepository)(nil)

func NewStatsRepository(s *Store) *StatsRepository {
	return &StatsRepository{s: s}
}

func (r *StatsRepository) Summary() (*repository.DashboardSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	summary := &repository.DashboardSummary{
		Products:     len(r.s.products),
		Customers:    len(r.s.customers),
		RevenueToday: decimal.Zero,
	}
	for _, p := range r.s.products {
		if p.Stock <= p.MinStock {
			summary.LowStockProducts++
		}
	}
	today := time.Now().Truncate(24 * time.Hour)
	for _, sale := range r.s.sales {
		if sale.Status == entity.SaleStatusCompleted && !sale.Date.Before(today) {
			summary.SalesToday++
			summary.RevenueToday = summary.RevenueToday.Add(sale.Total)
		}
	}
	for _, q := range r.s.quotes {
		if q.Status == entity.QuoteStatusPending {
			summary.PendingQuotes++
		}
	}
	for _, p := range r.s.purchases {
		if p.Status == entity.PurchaseStatusPending {
			summary.PendingPurchases++
		}
	}
	return summary, nil
}
