package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente.
// Balance es el saldo de cuenta corriente: sube con cada venta completada
// y baja cuando una venta se anula.
type Customer struct {
	ID          string
	Name        string
	TaxID       string // DNI o CUIT
	Email       string // único cuando no está vacío
	Phone       string
	Address     string
	CreditLimit decimal.Decimal
	Balance     decimal.Decimal // saldo_cuenta_corriente
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
