package entity

import "time"

// StockEntry es la cantidad de un producto en un depósito concreto.
// Única por par (producto, depósito). La recepción de compras la incrementa;
// las ventas solo tocan el agregado legado en Product.Stock.
type StockEntry struct {
	ProductID   string
	WarehouseID string
	Quantity    int
	Location    string // ubicación interna, ej: "Pasillo A - Estante 3"
	UpdatedAt   time.Time
}
