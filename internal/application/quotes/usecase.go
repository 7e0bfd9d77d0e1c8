package quotes

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rubengianelli8/Sistema-gestion/internal/application/audit"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/dto"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

const defaultValidityDays = 15

// UseCase casos de uso de presupuestos: crear, cambiar estado, convertir en venta.
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	quoteRepo    repository.QuoteRepository
	recorder     *audit.Recorder

	// convertUpdatesBalance unifica la conversión con el camino de venta
	// directa: la venta generada también suma al saldo del cliente.
	// En false se conserva el comportamiento histórico (no tocaba el saldo).
	convertUpdatesBalance bool
}

// NewUseCase construye el caso de uso de presupuestos.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	quoteRepo repository.QuoteRepository,
	recorder *audit.Recorder,
	convertUpdatesBalance bool,
) *UseCase {
	return &UseCase{
		txRunner:              txRunner,
		productRepo:           productRepo,
		customerRepo:          customerRepo,
		quoteRepo:             quoteRepo,
		recorder:              recorder,
		convertUpdatesBalance: convertUpdatesBalance,
	}
}

// Create crea un presupuesto pendiente. Valida que cliente y productos
// existan pero no verifica ni reserva stock: el compromiso de stock ocurre
// recién al convertir.
func (uc *UseCase) Create(actor entity.Actor, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	items := make([]entity.LineItem, 0, len(in.Items))
	total := decimal.Zero
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		line := item.ToEntity()
		if line.ProductName == "" {
			line.ProductName = product.Name
		}
		total = total.Add(line.Subtotal)
		items = append(items, line)
	}

	validity := in.ValidityDays
	if validity <= 0 {
		validity = defaultValidityDays
	}
	now := time.Now()
	quote := &entity.Quote{
		ID:           uuid.New().String(),
		CustomerID:   in.CustomerID,
		Items:        items,
		ValidityDays: validity,
		Notes:        in.Notes,
		SellerID:     actor.ID,
		SellerName:   actor.Name,
		Total:        total,
		Status:       entity.QuoteStatusPending,
		Date:         now,
		CreatedAt:    now,
	}
	if err := uc.quoteRepo.Create(quote); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, "crear", "presupuestos", "presupuesto "+quote.ID)
	resp := dto.ToQuoteResponse(quote)
	return &resp, nil
}

// UpdateStatus cambia el estado manualmente (aprobar, rechazar). Convertir no
// pasa por acá: un presupuesto convertido no se toca más.
func (uc *UseCase) UpdateStatus(actor entity.Actor, id, status string) (*dto.QuoteResponse, error) {
	if !entity.ValidQuoteStatus(status) || status == entity.QuoteStatusConverted {
		return nil, domain.ErrInvalidInput
	}
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if quote.Status == entity.QuoteStatusConverted {
		return nil, domain.ErrInvalidState
	}
	if err := uc.quoteRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	quote.Status = status
	uc.recorder.Record(actor, "actualizar", "presupuestos", fmt.Sprintf("presupuesto %s -> %s", id, status))
	resp := dto.ToQuoteResponse(quote)
	return &resp, nil
}

// Convert convierte el presupuesto en una venta completada. Revalida el stock
// al momento de convertir (no al crear), usa el total del presupuesto tal
// cual y marca la conversión con transición condicional: un presupuesto se
// convierte a lo sumo una vez, aunque lleguen dos conversiones a la vez.
func (uc *UseCase) Convert(ctx context.Context, actor entity.Actor, id string, in dto.ConvertQuoteRequest) (*dto.SaleResponse, error) {
	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.PaymentCash
	}
	if !entity.ValidPaymentMethod(paymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if quote.Status == entity.QuoteStatusConverted {
		return nil, domain.ErrInvalidState
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		CustomerID:    quote.CustomerID,
		Items:         quote.Items,
		PaymentMethod: paymentMethod,
		Notes:         "Generada desde presupuesto " + quote.ID,
		SellerID:      actor.ID,
		SellerName:    actor.Name,
		Total:         quote.Total,
		Status:        entity.SaleStatusCompleted,
		Date:          now,
		CreatedAt:     now,
	}

	err = uc.txRunner.RunQuote(ctx, func(
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
		quoteRepo repository.QuoteRepository,
	) error {
		// La transición primero: si otro proceso ya convirtió, acá corta
		// sin descontar nada.
		if err := quoteRepo.MarkConverted(id, sale.ID); err != nil {
			return err
		}
		for _, item := range sale.Items {
			if err := productRepo.DecrementStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		if uc.convertUpdatesBalance && sale.CustomerID != "" {
			if err := customerRepo.AdjustBalance(sale.CustomerID, sale.Total); err != nil {
				return err
			}
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.Record(actor, "convertir", "presupuestos", fmt.Sprintf("presupuesto %s -> venta %s", id, sale.ID))
	resp := dto.ToSaleResponse(sale)
	return &resp, nil
}

// Get obtiene un presupuesto por ID.
func (uc *UseCase) Get(id string) (*dto.QuoteResponse, error) {
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToQuoteResponse(quote)
	return &resp, nil
}

// List devuelve los presupuestos más recientes.
func (uc *UseCase) List(limit int) ([]dto.QuoteResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	list, err := uc.quoteRepo.List(limit)
	if err != nil {
		return nil, err
	}
	return dto.ToQuoteResponses(list), nil
}
