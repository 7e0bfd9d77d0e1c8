package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

const purchaseColumns = `id, supplier_id, supplier_name, warehouse_id, warehouse_name, items, invoice_number, notes, total, status, date, created_at, received_by, received_at`

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de persistencia para compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una nueva orden de compra con sus líneas como documento JSONB.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	items, err := marshalItems(purchase.Items)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(context.Background(), query,
		purchase.ID, purchase.SupplierID, purchase.SupplierName,
		purchase.WarehouseID, purchase.WarehouseName, items,
		purchase.InvoiceNumber, purchase.Notes, purchase.Total, purchase.Status,
		purchase.Date, purchase.CreatedAt, purchase.ReceivedBy, purchase.ReceivedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una orden de compra por ID. nil si no existe.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	var p entity.Purchase
	var rawItems []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.SupplierID, &p.SupplierName, &p.WarehouseID, &p.WarehouseName,
		&rawItems, &p.InvoiceNumber, &p.Notes, &p.Total, &p.Status,
		&p.Date, &p.CreatedAt, &p.ReceivedBy, &p.ReceivedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	if p.Items, err = unmarshalItems(rawItems); err != nil {
		return nil, err
	}
	return &p, nil
}

// List devuelve compras ordenadas por fecha descendente, máximo limit filas.
func (r *PurchaseRepo) List(limit int) ([]*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases ORDER BY date DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		var rawItems []byte
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.SupplierName, &p.WarehouseID, &p.WarehouseName,
			&rawItems, &p.InvoiceNumber, &p.Notes, &p.Total, &p.Status,
			&p.Date, &p.CreatedAt, &p.ReceivedBy, &p.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		items, err := unmarshalItems(rawItems)
		if err != nil {
			return nil, err
		}
		p.Items = items
		list = append(list, &p)
	}
	return list, rows.Err()
}

// MarkReceived pasa la compra de pendiente a recibida sellando receptor y
// fecha. El WHERE exige estado pendiente: una compra ya recibida o cancelada
// afecta cero filas y la recepción se reporta como estado inválido, así el
// stock nunca se suma dos veces.
func (r *PurchaseRepo) MarkReceived(id, receivedBy string, at time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE purchases SET status = $2, received_by = $3, received_at = $4 WHERE id = $1 AND status = $5`,
		id, entity.PurchaseStatusReceived, receivedBy, at, entity.PurchaseStatusPending,
	)
	if err != nil {
		return fmt.Errorf("receive purchase: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInvalidState
	}
	return nil
}
