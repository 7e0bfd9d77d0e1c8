package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor.
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	Email     string
	Phone     string
	Address   string
	TaxID     string // CUIT
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupplierPrice es el precio de un producto en el catálogo de un proveedor.
// Única por par (producto, proveedor); se actualiza por upsert.
type SupplierPrice struct {
	ID           string
	ProductID    string
	ProductName  string
	SupplierID   string
	SupplierName string
	Price        decimal.Decimal
	SupplierCode string // código del producto en el catálogo del proveedor
	UpdatedAt    time.Time
}
