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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)
var _ repository.SupplierPriceRepository = (*SupplierPriceRepo)(nil)

const supplierColumns = `id, name, contact, email, phone, address, tax_id, active, created_at, updated_at`

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `INSERT INTO suppliers (` + supplierColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Contact, supplier.Email, supplier.Phone,
		supplier.Address, supplier.TaxID, supplier.Active, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. nil si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Contact, &s.Email, &s.Phone,
		&s.Address, &s.TaxID, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List devuelve todos los proveedores ordenados por nombre.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.Email, &s.Phone,
			&s.Address, &s.TaxID, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, contact = $3, email = $4, phone = $5,
			address = $6, tax_id = $7, active = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Contact, supplier.Email, supplier.Phone,
		supplier.Address, supplier.TaxID, supplier.Active, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor y sus precios de catálogo.
func (r *SupplierRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM supplier_prices WHERE supplier_id = $1`, id); err != nil {
		return fmt.Errorf("delete supplier prices: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const supplierPriceColumns = `id, product_id, product_name, supplier_id, supplier_name, price, supplier_code, updated_at`

// SupplierPriceRepo implementación del puerto SupplierPriceRepository sobre PostgreSQL.
type SupplierPriceRepo struct {
	q Querier
}

// NewSupplierPriceRepository construye el adaptador para precios por proveedor.
func NewSupplierPriceRepository(q Querier) *SupplierPriceRepo {
	return &SupplierPriceRepo{q: q}
}

// Upsert registra o pisa el precio del par (producto, proveedor).
func (r *SupplierPriceRepo) Upsert(price *entity.SupplierPrice) error {
	query := `
		INSERT INTO supplier_prices (` + supplierPriceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (product_id, supplier_id)
		DO UPDATE SET product_name = EXCLUDED.product_name, supplier_name = EXCLUDED.supplier_name,
			price = EXCLUDED.price, supplier_code = EXCLUDED.supplier_code, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		price.ID, price.ProductID, price.ProductName, price.SupplierID, price.SupplierName,
		price.Price, price.SupplierCode, price.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert supplier price: %w", err)
	}
	return nil
}

// ListByProduct devuelve los precios de un producto en los catálogos de todos los proveedores.
func (r *SupplierPriceRepo) ListByProduct(productID string) ([]*entity.SupplierPrice, error) {
	query := `SELECT ` + supplierPriceColumns + ` FROM supplier_prices WHERE product_id = $1 ORDER BY price`
	return r.list(query, productID)
}

// ListBySupplier devuelve el catálogo de precios de un proveedor.
func (r *SupplierPriceRepo) ListBySupplier(supplierID string) ([]*entity.SupplierPrice, error) {
	query := `SELECT ` + supplierPriceColumns + ` FROM supplier_prices WHERE supplier_id = $1 ORDER BY product_name`
	return r.list(query, supplierID)
}

func (r *SupplierPriceRepo) list(query string, arg any) ([]*entity.SupplierPrice, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list supplier prices: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierPrice
	for rows.Next() {
		var p entity.SupplierPrice
		if err := rows.Scan(&p.ID, &p.ProductID, &p.ProductName, &p.SupplierID, &p.SupplierName,
			&p.Price, &p.SupplierCode, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier price: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
