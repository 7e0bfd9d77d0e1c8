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

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

const quoteColumns = `id, customer_id, items, validity_days, notes, seller_id, seller_name, total, status, converted_sale_id, date, created_at`

// QuoteRepo implementación del puerto QuoteRepository sobre PostgreSQL (usable con pool o tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador de persistencia para presupuestos. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persiste un nuevo presupuesto con sus líneas como documento JSONB.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	items, err := marshalItems(quote.Items)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(context.Background(), query,
		quote.ID, quote.CustomerID, items, quote.ValidityDays, quote.Notes,
		quote.SellerID, quote.SellerName, quote.Total, quote.Status,
		quote.ConvertedSaleID, quote.Date, quote.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID obtiene un presupuesto por ID. nil si no existe.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	var q entity.Quote
	var rawItems []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&q.ID, &q.CustomerID, &rawItems, &q.ValidityDays, &q.Notes,
		&q.SellerID, &q.SellerName, &q.Total, &q.Status,
		&q.ConvertedSaleID, &q.Date, &q.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	if q.Items, err = unmarshalItems(rawItems); err != nil {
		return nil, err
	}
	return &q, nil
}

// List devuelve presupuestos ordenados por fecha descendente, máximo limit filas.
func (r *QuoteRepo) List(limit int) ([]*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes ORDER BY date DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quote
	for rows.Next() {
		var q entity.Quote
		var rawItems []byte
		if err := rows.Scan(&q.ID, &q.CustomerID, &rawItems, &q.ValidityDays, &q.Notes,
			&q.SellerID, &q.SellerName, &q.Total, &q.Status,
			&q.ConvertedSaleID, &q.Date, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		items, err := unmarshalItems(rawItems)
		if err != nil {
			return nil, err
		}
		q.Items = items
		list = append(list, &q)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de un presupuesto (aprobar, rechazar).
// La conversión no pasa por acá: usa MarkConverted. El WHERE deja afuera a
// los presupuestos convertidos, así una conversión que gana la carrera no
// puede ser pisada por un aprobar/rechazar tardío.
func (r *QuoteRepo) UpdateStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE quotes SET status = $2 WHERE id = $1 AND status <> $3`,
		id, status, entity.QuoteStatusConverted,
	)
	if err != nil {
		return fmt.Errorf("update quote status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInvalidState
	}
	return nil
}

// MarkConverted pasa el presupuesto a convertido y sella la venta generada,
// solo si aún no estaba convertido: el WHERE hace que dos conversiones
// concurrentes no puedan ganar las dos.
func (r *QuoteRepo) MarkConverted(id, saleID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE quotes SET status = $2, converted_sale_id = $3 WHERE id = $1 AND status <> $2`,
		id, entity.QuoteStatusConverted, saleID,
	)
	if err != nil {
		return fmt.Errorf("convert quote: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInvalidState
	}
	return nil
}
