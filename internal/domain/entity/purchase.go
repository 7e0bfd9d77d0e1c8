package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
// PurchaseStatusPartial está definido para recepciones parciales futuras:
// hoy ninguna transición lo produce, pero los documentos que lo tengan se leen sin error.
const (
	PurchaseStatusPending   = "pendiente"
	PurchaseStatusReceived  = "recibida"
	PurchaseStatusPartial   = "parcial"
	PurchaseStatusCancelled = "cancelada"
)

// Purchase representa una orden de compra a un proveedor con destino a un
// depósito. Se crea pendiente sin efecto sobre stock; al recibirse incrementa
// la fila (producto, depósito) y el agregado legado de cada producto, una sola vez.
type Purchase struct {
	ID            string
	SupplierID    string
	SupplierName  string
	WarehouseID   string // depósito al que llega la mercadería
	WarehouseName string
	Items         []LineItem
	InvoiceNumber string
	Notes         string
	Total         decimal.Decimal
	Status        string
	Date          time.Time
	CreatedAt     time.Time
	ReceivedBy    string // nombre de quien recibió
	ReceivedAt    *time.Time
}
