package repository

import "github.com/shopspring/decimal"

// DashboardSummary agrupa los contadores del tablero.
type DashboardSummary struct {
	Products         int
	LowStockProducts int
	Customers        int
	SalesToday       int
	RevenueToday     decimal.Decimal
	PendingQuotes    int
	PendingPurchases int
}

// StatsRepository define el puerto de consultas agregadas para el tablero.
type StatsRepository interface {
	Summary() (*DashboardSummary, error)
}
