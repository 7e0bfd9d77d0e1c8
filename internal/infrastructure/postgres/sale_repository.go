package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, customer_id, items, payment_method, notes, seller_id, seller_name, total, status, date, created_at`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una nueva venta con sus líneas como documento JSONB.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	items, err := marshalItems(sale.Items)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, items, sale.PaymentMethod, sale.Notes,
		sale.SellerID, sale.SellerName, sale.Total, sale.Status, sale.Date, sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID. nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	var rawItems []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CustomerID, &rawItems, &s.PaymentMethod, &s.Notes,
		&s.SellerID, &s.SellerName, &s.Total, &s.Status, &s.Date, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if s.Items, err = unmarshalItems(rawItems); err != nil {
		return nil, err
	}
	return &s, nil
}

// List devuelve ventas ordenadas por fecha descendente, máximo limit filas.
func (r *SaleRepo) List(limit int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY date DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// ListByCustomer devuelve las ventas de un cliente, más recientes primero.
func (r *SaleRepo) ListByCustomer(customerID string) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE customer_id = $1 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list sales by customer: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// MarkVoided pasa la venta a anulada solo si aún no lo está: el WHERE
// descarta ventas ya anuladas, así una doble anulación concurrente afecta
// cero filas y se reporta como estado inválido.
func (r *SaleRepo) MarkVoided(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE sales SET status = $2 WHERE id = $1 AND status <> $2`,
		id, entity.SaleStatusVoided,
	)
	if err != nil {
		return fmt.Errorf("void sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInvalidState
	}
	return nil
}

func (r *SaleRepo) scanRows(rows pgx.Rows) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var rawItems []byte
		if err := rows.Scan(&s.ID, &s.CustomerID, &rawItems, &s.PaymentMethod, &s.Notes,
			&s.SellerID, &s.SellerName, &s.Total, &s.Status, &s.Date, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		items, err := unmarshalItems(rawItems)
		if err != nil {
			return nil, err
		}
		s.Items = items
		list = append(list, &s)
	}
	return list, rows.Err()
}
