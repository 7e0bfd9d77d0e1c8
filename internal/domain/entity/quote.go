package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un presupuesto.
const (
	QuoteStatusPending   = "pendiente"
	QuoteStatusApproved  = "aprobado"
	QuoteStatusRejected  = "rechazado"
	QuoteStatusConverted = "convertido"
)

// Quote representa un presupuesto: una lista de precios no vinculante que
// puede convertirse una sola vez en una venta. No reserva stock al crearse;
// el stock se revalida recién al convertir.
type Quote struct {
	ID              string
	CustomerID      string
	Items           []LineItem
	ValidityDays    int
	Notes           string
	SellerID        string
	SellerName      string
	Total           decimal.Decimal
	Status          string
	ConvertedSaleID string // id de la venta producida por la conversión
	Date            time.Time
	CreatedAt       time.Time
}

// ValidQuoteStatus indica si el estado es uno de los definidos.
func ValidQuoteStatus(s string) bool {
	switch s {
	case QuoteStatusPending, QuoteStatusApproved, QuoteStatusRejected, QuoteStatusConverted:
		return true
	}
	return false
}
