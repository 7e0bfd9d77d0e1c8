package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock es el agregado legado (stock_actual): el total sin discriminar depósito.
// El detalle por depósito vive en StockEntry; la suma de esas filas debería
// conciliar con Stock. Invariante: Stock >= 0 siempre.
type Product struct {
	ID             string
	Name           string
	Description    string
	Barcode        string // código de barras, único cuando no está vacío
	CategoryID     string
	RetailPrice    decimal.Decimal // precio minorista
	WholesalePrice decimal.Decimal // precio mayorista
	Stock          int             // agregado legado (stock_actual)
	MinStock       int             // umbral de alerta de stock mínimo
	ImageURL       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
