package postgres

import (
	"context"
	"fmt"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación del puerto AuditRepository sobre PostgreSQL.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador del registro de auditoría.
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Insert agrega una entrada. El registro es solo append.
func (r *AuditRepo) Insert(entry *entity.AuditEntry) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO audit_logs (id, user_id, user_name, action, module, detail, ts)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.UserID, entry.UserName, entry.Action, entry.Module, entry.Detail, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// List devuelve entradas ordenadas por timestamp descendente, máximo limit filas.
func (r *AuditRepo) List(limit int) ([]*entity.AuditEntry, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, user_id, user_name, action, module, detail, ts
		 FROM audit_logs ORDER BY ts DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditEntry
	for rows.Next() {
		var e entity.AuditEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.UserName, &e.Action, &e.Module, &e.Detail, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
