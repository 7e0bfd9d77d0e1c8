package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
)

// CreateQuoteRequest alta de presupuesto. No reserva stock.
type CreateQuoteRequest struct {
	CustomerID   string        `json:"cliente_id"`
	Items        []LineItemDTO `json:"items"`
	ValidityDays int           `json:"dias_validez"`
	Notes        string        `json:"notas"`
}

// UpdateQuoteStatusRequest cambio de estado manual (aprobar / rechazar).
type UpdateQuoteStatusRequest struct {
	Status string `json:"estado"`
}

// ConvertQuoteRequest datos de la venta que produce la conversión.
type ConvertQuoteRequest struct {
	PaymentMethod string `json:"metodo_pago"`
}

// QuoteResponse presupuesto tal como lo ve el API.
type QuoteResponse struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"cliente_id"`
	Items           []LineItemDTO   `json:"items"`
	ValidityDays    int             `json:"dias_validez"`
	Notes           string          `json:"notas,omitempty"`
	SellerID        string          `json:"vendedor_id"`
	SellerName      string          `json:"vendedor_nombre"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"estado"`
	ConvertedSaleID string          `json:"venta_id,omitempty"`
	Date            time.Time       `json:"fecha"`
}

// ToQuoteResponse convierte la entidad a respuesta del API.
func ToQuoteResponse(q *entity.Quote) QuoteResponse {
	return QuoteResponse{
		ID:              q.ID,
		CustomerID:      q.CustomerID,
		Items:           LineItemsFromEntity(q.Items),
		ValidityDays:    q.ValidityDays,
		Notes:           q.Notes,
		SellerID:        q.SellerID,
		SellerName:      q.SellerName,
		Total:           q.Total,
		Status:          q.Status,
		ConvertedSaleID: q.ConvertedSaleID,
		Date:            q.Date,
	}
}

// ToQuoteResponses convierte una lista de presupuestos.
func ToQuoteResponses(list []*entity.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(list))
	for _, q := range list {
		out = append(out, ToQuoteResponse(q))
	}
	return out
}
