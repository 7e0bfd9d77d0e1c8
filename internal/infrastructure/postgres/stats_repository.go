package postgres

import (
	"context"
	"fmt"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas para el tablero, sobre PostgreSQL.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// Summary arma los contadores del tablero en una sola consulta.
// "Hoy" se corta con la zona horaria del servidor de base de datos.
func (r *StatsRepo) Summary() (*repository.DashboardSummary, error) {
	query := `
		SELECT
			(SELECT count(*) FROM products),
			(SELECT count(*) FROM products WHERE stock <= min_stock),
			(SELECT count(*) FROM customers),
			(SELECT count(*) FROM sales WHERE date >= date_trunc('day', now()) AND status <> $1),
			(SELECT COALESCE(sum(total), 0) FROM sales WHERE date >= date_trunc('day', now()) AND status <> $1),
			(SELECT count(*) FROM quotes WHERE status = $2),
			(SELECT count(*) FROM purchases WHERE status = $3)`
	var s repository.DashboardSummary
	err := r.q.QueryRow(context.Background(), query,
		entity.SaleStatusVoided, entity.QuoteStatusPending, entity.PurchaseStatusPending,
	).Scan(
		&s.Products, &s.LowStockProducts, &s.Customers,
		&s.SalesToday, &s.RevenueToday, &s.PendingQuotes, &s.PendingPurchases,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &s, nil
}
