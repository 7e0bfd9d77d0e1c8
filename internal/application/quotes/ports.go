package quotes

import (
	"context"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción con repos atados a
// ella. La conversión crea una venta, por eso el callback recibe también los
// repos del ciclo de venta.
type TxRunner interface {
	RunQuote(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
		quoteRepo repository.QuoteRepository,
	) error) error
}
