package repository

import "github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"

// AuditRepository define el puerto del registro de auditoría (solo append y lectura).
type AuditRepository interface {
	Insert(entry *entity.AuditEntry) error
	// List devuelve entradas ordenadas por timestamp descendente, máximo limit filas.
	List(limit int) ([]*entity.AuditEntry, error)
}
