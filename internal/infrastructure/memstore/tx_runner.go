package memstore

import (
	"context"

	"github.com/rubengianelli8/Sistema-gestion/internal/application/purchasing"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/quotes"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/sales"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

// TxRunner emula la transacción: saca una foto del estado antes de ejecutar
// el callback y la restaura completa si este falla. Así un error a mitad de
// camino no deja efectos parciales, igual que un ROLLBACK.
type TxRunner struct {
	store *Store
}

var (
	_ sales.TxRunner      = (*TxRunner)(nil)
	_ quotes.TxRunner     = (*TxRunner)(nil)
	_ purchasing.TxRunner = (*TxRunner)(nil)
)

// NewTxRunner crea el runner sobre el store dado.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

func (r *TxRunner) run(fn func() error) error {
	snap := r.store.snapshot()
	if err := fn(); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}

func (r *TxRunner) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return r.run(func() error {
		return fn(NewProductRepository(r.store), NewCustomerRepository(r.store), NewSaleRepository(r.store))
	})
}

func (r *TxRunner) RunQuote(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	quoteRepo repository.QuoteRepository,
) error) error {
	return r.run(func() error {
		return fn(
			NewProductRepository(r.store),
			NewCustomerRepository(r.store),
			NewSaleRepository(r.store),
			NewQuoteRepository(r.store),
		)
	})
}

func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	purchaseRepo repository.PurchaseRepository,
) error) error {
	return r.run(func() error {
		return fn(NewProductRepository(r.store), NewStockRepository(r.store), NewPurchaseRepository(r.store))
	})
}
