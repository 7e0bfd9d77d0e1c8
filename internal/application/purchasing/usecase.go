package purchasing

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

// UseCase casos de uso de compras: crear orden, recibir mercadería, consultar.
type UseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	supplierRepo  repository.SupplierRepository
	warehouseRepo repository.WarehouseRepository
	purchaseRepo  repository.PurchaseRepository
	recorder      *audit.Recorder
}

// NewUseCase construye el caso de uso de compras.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	warehouseRepo repository.WarehouseRepository,
	purchaseRepo repository.PurchaseRepository,
	recorder *audit.Recorder,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		supplierRepo:  supplierRepo,
		warehouseRepo: warehouseRepo,
		purchaseRepo:  purchaseRepo,
		recorder:      recorder,
	}
}

// Create crea una orden de compra pendiente. No toca stock: el stock entra
// recién con la recepción.
func (uc *UseCase) Create(actor entity.Actor, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.SupplierID == "" || in.WarehouseID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
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

	now := time.Now()
	purchase := &entity.Purchase{
		ID:            uuid.New().String(),
		SupplierID:    in.SupplierID,
		SupplierName:  supplier.Name,
		WarehouseID:   in.WarehouseID,
		WarehouseName: warehouse.Name,
		Items:         items,
		InvoiceNumber: in.InvoiceNumber,
		Notes:         in.Notes,
		Total:         total,
		Status:        entity.PurchaseStatusPending,
		Date:          now,
		CreatedAt:     now,
	}
	if err := uc.purchaseRepo.Create(purchase); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, "crear", "compras", fmt.Sprintf("compra %s a %s", purchase.ID, supplier.Name))
	resp := dto.ToPurchaseResponse(purchase)
	return &resp, nil
}

// Receive marca la compra como recibida e incrementa, por cada línea, la fila
// de stock del par (producto, depósito) y el agregado del producto. La
// transición condicional garantiza que el stock entra exactamente una vez.
func (uc *UseCase) Receive(ctx context.Context, actor entity.Actor, id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	if purchase.Status != entity.PurchaseStatusPending {
		return nil, domain.ErrInvalidState
	}

	now := time.Now()
	err = uc.txRunner.RunPurchase(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		// La transición primero: si otro proceso ya recibió, acá corta sin
		// sumar stock de nuevo.
		if err := purchaseRepo.MarkReceived(id, actor.Name, now); err != nil {
			return err
		}
		for _, item := range purchase.Items {
			if err := stockRepo.IncrementEntry(item.ProductID, purchase.WarehouseID, item.Quantity); err != nil {
				return err
			}
			if err := productRepo.IncrementStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	purchase.Status = entity.PurchaseStatusReceived
	purchase.ReceivedBy = actor.Name
	purchase.ReceivedAt = &now
	uc.recorder.Record(actor, "recibir", "compras", "compra "+id)
	resp := dto.ToPurchaseResponse(purchase)
	return &resp, nil
}

// Get obtiene una orden de compra por ID.
func (uc *UseCase) Get(id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToPurchaseResponse(purchase)
	return &resp, nil
}

// List devuelve las compras más recientes.
func (uc *UseCase) List(limit int) ([]dto.PurchaseResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	list, err := uc.purchaseRepo.List(limit)
	if err != nil {
		return nil, err
	}
	return dto.ToPurchaseResponses(list), nil
}
