package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
)

// CreatePurchaseRequest alta de orden de compra. Nace pendiente, sin tocar stock.
type CreatePurchaseRequest struct {
	SupplierID    string        `json:"proveedor_id"`
	WarehouseID   string        `json:"deposito_id"`
	Items         []LineItemDTO `json:"items"`
	InvoiceNumber string        `json:"numero_factura"`
	Notes         string        `json:"notas"`
}

// PurchaseResponse orden de compra tal como la ve el API.
type PurchaseResponse struct {
	ID            string          `json:"id"`
	SupplierID    string          `json:"proveedor_id"`
	SupplierName  string          `json:"proveedor_nombre"`
	WarehouseID   string          `json:"deposito_id"`
	WarehouseName string          `json:"deposito_nombre"`
	Items         []LineItemDTO   `json:"items"`
	InvoiceNumber string          `json:"numero_factura,omitempty"`
	Notes         string          `json:"notas,omitempty"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"estado"`
	Date          time.Time       `json:"fecha"`
	ReceivedBy    string          `json:"recibido_por,omitempty"`
	ReceivedAt    *time.Time      `json:"fecha_recepcion,omitempty"`
}

// ToPurchaseResponse convierte la entidad a respuesta del API.
func ToPurchaseResponse(p *entity.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:            p.ID,
		SupplierID:    p.SupplierID,
		SupplierName:  p.SupplierName,
		WarehouseID:   p.WarehouseID,
		WarehouseName: p.WarehouseName,
		Items:         LineItemsFromEntity(p.Items),
		InvoiceNumber: p.InvoiceNumber,
		Notes:         p.Notes,
		Total:         p.Total,
		Status:        p.Status,
		Date:          p.Date,
		ReceivedBy:    p.ReceivedBy,
		ReceivedAt:    p.ReceivedAt,
	}
}

// ToPurchaseResponses convierte una lista de compras.
func ToPurchaseResponses(list []*entity.Purchase) []PurchaseResponse {
	out := make([]PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToPurchaseResponse(p))
	}
	return out
}
