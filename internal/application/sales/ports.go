package sales

import (
	"context"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción con repos atados a
// ella. Si el callback devuelve error, nada de lo hecho adentro queda.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
