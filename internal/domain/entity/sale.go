package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusCompleted = "completada"
	SaleStatusPending   = "pendiente"
	SaleStatusVoided    = "anulada"
)

// Métodos de pago aceptados.
const (
	PaymentCash     = "efectivo"
	PaymentCard     = "tarjeta"
	PaymentTransfer = "transferencia"
)

// LineItem es una línea de venta, presupuesto o compra.
// Subtotal llega del cliente y se usa tal cual para el total del documento;
// no se recalcula desde UnitPrice por Quantity (comportamiento heredado).
// Los tags JSON definen la forma del documento persistido y del API.
type LineItem struct {
	ProductID   string          `json:"producto_id"`
	ProductName string          `json:"producto_nombre"`
	Quantity    int             `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Sale representa una venta. Al crearse descuenta stock agregado de cada
// producto e incrementa el saldo del cliente (si hay cliente). Anularla
// revierte ambos efectos exactamente una vez.
type Sale struct {
	ID            string
	CustomerID    string // opcional: venta de mostrador sin cliente
	Items         []LineItem
	PaymentMethod string
	Notes         string
	SellerID      string
	SellerName    string
	Total         decimal.Decimal
	Status        string
	Date          time.Time
	CreatedAt     time.Time
}

// ValidPaymentMethod indica si el método de pago es uno de los aceptados.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}
