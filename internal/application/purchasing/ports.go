package purchasing

import (
	"context"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción con repos atados a
// ella. La recepción mueve el stock por depósito, el agregado del producto y
// el estado del documento en un solo commit.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}
