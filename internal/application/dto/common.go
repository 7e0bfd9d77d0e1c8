package dto

import (
	"github.com/shopspring/decimal"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
)

// ErrorResponse respuesta de error estándar del API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// LineItemDTO línea de venta, presupuesto o compra tal como viaja por el API.
// El subtotal lo manda el cliente y se respeta tal cual; el total del
// documento es la suma de subtotales.
type LineItemDTO struct {
	ProductID   string          `json:"producto_id"`
	ProductName string          `json:"producto_nombre"`
	Quantity    int             `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// ToEntity convierte la línea del API a la del dominio.
func (d LineItemDTO) ToEntity() entity.LineItem {
	return entity.LineItem{
		ProductID:   d.ProductID,
		ProductName: d.ProductName,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		Subtotal:    d.Subtotal,
	}
}

// LineItemsToEntity convierte todas las líneas de un request.
func LineItemsToEntity(items []LineItemDTO) []entity.LineItem {
	out := make([]entity.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, it.ToEntity())
	}
	return out
}

// LineItemsFromEntity convierte las líneas del dominio para una respuesta.
func LineItemsFromEntity(items []entity.LineItem) []LineItemDTO {
	out := make([]LineItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemDTO{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return out
}
