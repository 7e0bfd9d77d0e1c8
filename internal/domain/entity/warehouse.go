package entity

import "time"

// Warehouse representa un depósito: una ubicación física de stock.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	Manager   string // encargado
	Phone     string
	Active    bool
	CreatedAt time.Time
}
