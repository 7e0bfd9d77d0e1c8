package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
)

// CreateSaleRequest alta de venta. cliente_id vacío = venta de mostrador.
type CreateSaleRequest struct {
	CustomerID    string        `json:"cliente_id"`
	Items         []LineItemDTO `json:"items"`
	PaymentMethod string        `json:"metodo_pago"`
	Notes         string        `json:"notas"`
}

// SaleResponse venta tal como la ve el API.
type SaleResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"cliente_id,omitempty"`
	Items         []LineItemDTO   `json:"items"`
	PaymentMethod string          `json:"metodo_pago"`
	Notes         string          `json:"notas,omitempty"`
	SellerID      string          `json:"vendedor_id"`
	SellerName    string          `json:"vendedor_nombre"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"estado"`
	Date          time.Time       `json:"fecha"`
}

// ToSaleResponse convierte la entidad a respuesta del API.
func ToSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		Items:         LineItemsFromEntity(s.Items),
		PaymentMethod: s.PaymentMethod,
		Notes:         s.Notes,
		SellerID:      s.SellerID,
		SellerName:    s.SellerName,
		Total:         s.Total,
		Status:        s.Status,
		Date:          s.Date,
	}
}

// ToSaleResponses convierte una lista de ventas.
func ToSaleResponses(list []*entity.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSaleResponse(s))
	}
	return out
}
