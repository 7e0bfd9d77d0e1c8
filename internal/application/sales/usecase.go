package sales

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

// UseCase casos de uso de ventas: crear, anular y consultar.
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
	recorder     *audit.Recorder
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	recorder *audit.Recorder,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		recorder:     recorder,
	}
}

// Create crea una venta completada: descuenta stock agregado de cada línea y,
// si hay cliente, suma el total a su cuenta corriente. Todo dentro de una
// transacción: si una línea no tiene stock suficiente no queda ningún efecto.
func (uc *UseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	// Validaciones de existencia fuera de la tx (solo lectura).
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
	}
	items, total, err := uc.resolveItems(in.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		CustomerID:    in.CustomerID,
		Items:         items,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		SellerID:      actor.ID,
		SellerName:    actor.Name,
		Total:         total,
		Status:        entity.SaleStatusCompleted,
		Date:          now,
		CreatedAt:     now,
	}

	err = uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
	) error {
		// El descuento es condicional por línea: la primera que no alcanza
		// corta y revierte las anteriores.
		for _, item := range sale.Items {
			if err := productRepo.DecrementStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		if sale.CustomerID != "" {
			if err := customerRepo.AdjustBalance(sale.CustomerID, sale.Total); err != nil {
				return err
			}
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.Record(actor, "crear", "ventas", fmt.Sprintf("venta %s total %s", sale.ID, sale.Total))
	resp := dto.ToSaleResponse(sale)
	return &resp, nil
}

// Void anula una venta: repone el stock de cada línea y descuenta el total
// del saldo del cliente. La transición de estado es condicional, así los
// efectos se revierten exactamente una vez aunque lleguen dos anulaciones.
func (uc *UseCase) Void(ctx context.Context, actor entity.Actor, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.Status == entity.SaleStatusVoided {
		return nil, domain.ErrInvalidState
	}

	err = uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Primero la transición: si otro proceso ya anuló, MarkVoided afecta
		// cero filas y acá no se repone nada.
		if err := saleRepo.MarkVoided(id); err != nil {
			return err
		}
		for _, item := range sale.Items {
			if err := productRepo.IncrementStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		if sale.CustomerID != "" {
			if err := customerRepo.AdjustBalance(sale.CustomerID, sale.Total.Neg()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sale.Status = entity.SaleStatusVoided
	uc.recorder.Record(actor, "anular", "ventas", "venta "+id)
	resp := dto.ToSaleResponse(sale)
	return &resp, nil
}

// Get obtiene una venta por ID.
func (uc *UseCase) Get(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToSaleResponse(sale)
	return &resp, nil
}

// List devuelve las ventas más recientes.
func (uc *UseCase) List(limit int) ([]dto.SaleResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	list, err := uc.saleRepo.List(limit)
	if err != nil {
		return nil, err
	}
	return dto.ToSaleResponses(list), nil
}

// ListByCustomer devuelve el historial de ventas de un cliente.
func (uc *UseCase) ListByCustomer(customerID string) ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return dto.ToSaleResponses(list), nil
}

// resolveItems valida que cada producto exista, completa el nombre desde el
// catálogo y suma los subtotales enviados por el cliente.
func (uc *UseCase) resolveItems(items []dto.LineItemDTO) ([]entity.LineItem, decimal.Decimal, error) {
	out := make([]entity.LineItem, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if product == nil {
			return nil, decimal.Zero, domain.ErrNotFound
		}
		line := item.ToEntity()
		if line.ProductName == "" {
			line.ProductName = product.Name
		}
		total = total.Add(line.Subtotal)
		out = append(out, line)
	}
	return out, total, nil
}
