package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
)

// CategoryRequest alta o edición de categoría.
type CategoryRequest struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

// CategoryResponse categoría tal como la ve el API.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion"`
	CreatedAt   time.Time `json:"fecha_creacion"`
}

// ToCategoryResponse convierte la entidad a respuesta del API.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt}
}

// WarehouseRequest alta o edición de depósito.
type WarehouseRequest struct {
	Name    string `json:"nombre"`
	Address string `json:"direccion"`
	Manager string `json:"encargado"`
	Phone   string `json:"telefono"`
	Active  *bool  `json:"activo"`
}

// WarehouseResponse depósito tal como lo ve el API.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Address   string    `json:"direccion"`
	Manager   string    `json:"encargado"`
	Phone     string    `json:"telefono"`
	Active    bool      `json:"activo"`
	CreatedAt time.Time `json:"fecha_creacion"`
}

// ToWarehouseResponse convierte la entidad a respuesta del API.
func ToWarehouseResponse(w *entity.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID: w.ID, Name: w.Name, Address: w.Address,
		Manager: w.Manager, Phone: w.Phone, Active: w.Active, CreatedAt: w.CreatedAt,
	}
}

// WarehouseStockResponse fila de stock de un producto en un depósito.
type WarehouseStockResponse struct {
	ProductID   string    `json:"producto_id"`
	WarehouseID string    `json:"deposito_id"`
	Quantity    int       `json:"cantidad"`
	Location    string    `json:"ubicacion,omitempty"`
	UpdatedAt   time.Time `json:"fecha_actualizacion"`
}

// ToWarehouseStockResponse convierte la entidad a respuesta del API.
func ToWarehouseStockResponse(e *entity.StockEntry) WarehouseStockResponse {
	return WarehouseStockResponse{
		ProductID: e.ProductID, WarehouseID: e.WarehouseID,
		Quantity: e.Quantity, Location: e.Location, UpdatedAt: e.UpdatedAt,
	}
}

// SupplierRequest alta o edición de proveedor.
type SupplierRequest struct {
	Name    string `json:"nombre"`
	Contact string `json:"contacto"`
	Email   string `json:"email"`
	Phone   string `json:"telefono"`
	Address string `json:"direccion"`
	TaxID   string `json:"cuit"`
	Active  *bool  `json:"activo"`
}

// SupplierResponse proveedor tal como lo ve el API.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Contact   string    `json:"contacto"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefono"`
	Address   string    `json:"direccion"`
	TaxID     string    `json:"cuit"`
	Active    bool      `json:"activo"`
	CreatedAt time.Time `json:"fecha_creacion"`
}

// ToSupplierResponse convierte la entidad a respuesta del API.
func ToSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID: s.ID, Name: s.Name, Contact: s.Contact, Email: s.Email,
		Phone: s.Phone, Address: s.Address, TaxID: s.TaxID, Active: s.Active, CreatedAt: s.CreatedAt,
	}
}

// SupplierPriceRequest registra el precio de un producto en el catálogo de un proveedor.
type SupplierPriceRequest struct {
	ProductID    string          `json:"producto_id"`
	SupplierID   string          `json:"proveedor_id"`
	Price        decimal.Decimal `json:"precio"`
	SupplierCode string          `json:"codigo_proveedor"`
}

// SupplierPriceResponse precio por proveedor tal como lo ve el API.
type SupplierPriceResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"producto_id"`
	ProductName  string          `json:"producto_nombre"`
	SupplierID   string          `json:"proveedor_id"`
	SupplierName string          `json:"proveedor_nombre"`
	Price        decimal.Decimal `json:"precio"`
	SupplierCode string          `json:"codigo_proveedor,omitempty"`
	UpdatedAt    time.Time       `json:"fecha_actualizacion"`
}

// ToSupplierPriceResponse convierte la entidad a respuesta del API.
func ToSupplierPriceResponse(p *entity.SupplierPrice) SupplierPriceResponse {
	return SupplierPriceResponse{
		ID: p.ID, ProductID: p.ProductID, ProductName: p.ProductName,
		SupplierID: p.SupplierID, SupplierName: p.SupplierName,
		Price: p.Price, SupplierCode: p.SupplierCode, UpdatedAt: p.UpdatedAt,
	}
}
