package entity

import "time"

// AuditEntry es un registro de auditoría: quién hizo qué, sobre qué módulo y
// cuándo. Solo se agrega; ningún flujo normal lo modifica ni lo borra.
type AuditEntry struct {
	ID        string
	UserID    string
	UserName  string
	Action    string // crear, actualizar, eliminar, anular, convertir, recibir, login...
	Module    string // productos, ventas, presupuestos, compras...
	Detail    string
	Timestamp time.Time
}
