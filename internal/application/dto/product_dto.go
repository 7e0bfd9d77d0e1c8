package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
)

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	Name           string          `json:"nombre"`
	Description    string          `json:"descripcion"`
	Barcode        string          `json:"codigo_barras"`
	CategoryID     string          `json:"categoria_id"`
	RetailPrice    decimal.Decimal `json:"precio_minorista"`
	WholesalePrice decimal.Decimal `json:"precio_mayorista"`
	Stock          int             `json:"stock_actual"`
	MinStock       int             `json:"stock_minimo"`
	ImageURL       string          `json:"imagen_url"`
}

// UpdateProductRequest edición de producto. No permite tocar stock_actual:
// el stock solo se mueve por ventas, anulaciones y recepciones.
type UpdateProductRequest struct {
	Name           *string          `json:"nombre"`
	Description    *string          `json:"descripcion"`
	Barcode        *string          `json:"codigo_barras"`
	CategoryID     *string          `json:"categoria_id"`
	RetailPrice    *decimal.Decimal `json:"precio_minorista"`
	WholesalePrice *decimal.Decimal `json:"precio_mayorista"`
	MinStock       *int             `json:"stock_minimo"`
	ImageURL       *string          `json:"imagen_url"`
}

// ProductResponse producto tal como lo ve el API.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"nombre"`
	Description    string          `json:"descripcion"`
	Barcode        string          `json:"codigo_barras"`
	CategoryID     string          `json:"categoria_id"`
	RetailPrice    decimal.Decimal `json:"precio_minorista"`
	WholesalePrice decimal.Decimal `json:"precio_mayorista"`
	Stock          int             `json:"stock_actual"`
	MinStock       int             `json:"stock_minimo"`
	LowStock       bool            `json:"stock_bajo"`
	ImageURL       string          `json:"imagen_url"`
	CreatedAt      time.Time       `json:"fecha_creacion"`
	UpdatedAt      time.Time       `json:"fecha_actualizacion"`
}

// ToProductResponse convierte la entidad a respuesta del API.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Barcode:        p.Barcode,
		CategoryID:     p.CategoryID,
		RetailPrice:    p.RetailPrice,
		WholesalePrice: p.WholesalePrice,
		Stock:          p.Stock,
		MinStock:       p.MinStock,
		LowStock:       p.Stock <= p.MinStock,
		ImageURL:       p.ImageURL,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
