package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
)

// DashboardResponse contadores del tablero.
type DashboardResponse struct {
	Products         int             `json:"productos"`
	LowStockProducts int             `json:"productos_stock_bajo"`
	Customers        int             `json:"clientes"`
	SalesToday       int             `json:"ventas_hoy"`
	RevenueToday     decimal.Decimal `json:"ingresos_hoy"`
	PendingQuotes    int             `json:"presupuestos_pendientes"`
	PendingPurchases int             `json:"compras_pendientes"`
}

// AuditEntryResponse entrada del registro de auditoría.
type AuditEntryResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"usuario_id"`
	UserName  string    `json:"usuario_nombre"`
	Action    string    `json:"accion"`
	Module    string    `json:"modulo"`
	Detail    string    `json:"detalle,omitempty"`
	Timestamp time.Time `json:"fecha"`
}

// ToAuditEntryResponse convierte la entidad a respuesta del API.
func ToAuditEntryResponse(e *entity.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID: e.ID, UserID: e.UserID, UserName: e.UserName,
		Action: e.Action, Module: e.Module, Detail: e.Detail, Timestamp: e.Timestamp,
	}
}

// BackupResponse volcado completo de datos para respaldo (sin hashes de contraseña).
type BackupResponse struct {
	GeneratedAt time.Time               `json:"generado_en"`
	Users       []UserResponse          `json:"usuarios"`
	Categories  []CategoryResponse      `json:"categorias"`
	Products    []ProductResponse       `json:"productos"`
	Customers   []CustomerResponse      `json:"clientes"`
	Warehouses  []WarehouseResponse     `json:"depositos"`
	Suppliers   []SupplierResponse      `json:"proveedores"`
	Sales       []SaleResponse          `json:"ventas"`
	Quotes      []QuoteResponse         `json:"presupuestos"`
	Purchases   []PurchaseResponse      `json:"compras"`
}
