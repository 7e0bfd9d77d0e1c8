package purchasing_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubengianelli8/Sistema-gestion/internal/application/audit"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/dto"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/purchasing"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/infrastructure/memstore"
	"github.com/rubengianelli8/Sistema-gestion/pkg/logger"
)

var testActor = entity.Actor{ID: "u-1", Name: "Almacenero Test", Role: entity.RoleAlmacenero}

type fixture struct {
	store       *memstore.Store
	uc          *purchasing.UseCase
	productID   string
	supplierID  string
	warehouseID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	recorder := audit.NewRecorder(memstore.NewAuditRepository(store), nil, log, nil)
	t.Cleanup(recorder.Close)

	productRepo := memstore.NewProductRepository(store)
	supplierRepo := memstore.NewSupplierRepository(store)
	warehouseRepo := memstore.NewWarehouseRepository(store)

	productID := uuid.New().String()
	require.NoError(t, productRepo.Create(&entity.Product{
		ID:    productID,
		Name:  "Aceite Girasol 900ml",
		Stock: 5,
	}))
	supplierID := uuid.New().String()
	require.NoError(t, supplierRepo.Create(&entity.Supplier{
		ID:     supplierID,
		Name:   "Distribuidora Norte",
		Active: true,
	}))
	warehouseID := uuid.New().String()
	require.NoError(t, warehouseRepo.Create(&entity.Warehouse{
		ID:   warehouseID,
		Name: "Depósito Central",
	}))

	uc := purchasing.NewUseCase(
		memstore.NewTxRunner(store),
		productRepo,
		supplierRepo,
		warehouseRepo,
		memstore.NewPurchaseRepository(store),
		recorder,
	)
	return &fixture{
		store:       store,
		uc:          uc,
		productID:   productID,
		supplierID:  supplierID,
		warehouseID: warehouseID,
	}
}

func (f *fixture) createPurchase(t *testing.T, qty int, subtotal int64) *dto.PurchaseResponse {
	t.Helper()
	resp, err := f.uc.Create(testActor, dto.CreatePurchaseRequest{
		SupplierID:  f.supplierID,
		WarehouseID: f.warehouseID,
		Items: []dto.LineItemDTO{{
			ProductID: f.productID,
			Quantity:  qty,
			UnitPrice: decimal.NewFromInt(subtotal).Div(decimal.NewFromInt(int64(qty))),
			Subtotal:  decimal.NewFromInt(subtotal),
		}},
		InvoiceNumber: "FC-A-0001-00001234",
	})
	require.NoError(t, err)
	return resp
}

func (f *fixture) product(t *testing.T) *entity.Product {
	t.Helper()
	p, err := memstore.NewProductRepository(f.store).GetByID(f.productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func (f *fixture) stockEntry(t *testing.T) *entity.StockEntry {
	t.Helper()
	e, err := memstore.NewStockRepository(f.store).Get(f.productID, f.warehouseID)
	require.NoError(t, err)
	return e
}

func TestCreate_NacePendienteSinTocarStock(t *testing.T) {
	f := newFixture(t)

	purchase := f.createPurchase(t, 20, 60000)

	assert.Equal(t, entity.PurchaseStatusPending, purchase.Status)
	assert.Equal(t, "Distribuidora Norte", purchase.SupplierName, "el nombre del proveedor se denormaliza")
	assert.Equal(t, "Depósito Central", purchase.WarehouseName)
	assert.True(t, purchase.Total.Equal(decimal.NewFromInt(60000)))
	assert.Equal(t, 5, f.product(t).Stock, "crear la orden no debe tocar stock")
	assert.Equal(t, 0, f.stockEntry(t).Quantity)
}

func TestCreate_ProveedorInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(testActor, dto.CreatePurchaseRequest{
		SupplierID:  uuid.New().String(),
		WarehouseID: f.warehouseID,
		Items: []dto.LineItemDTO{{
			ProductID: f.productID,
			Quantity:  1,
			Subtotal:  decimal.NewFromInt(100),
		}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_DepositoInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(testActor, dto.CreatePurchaseRequest{
		SupplierID:  f.supplierID,
		WarehouseID: uuid.New().String(),
		Items: []dto.LineItemDTO{{
			ProductID: f.productID,
			Quantity:  1,
			Subtotal:  decimal.NewFromInt(100),
		}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceive_IncrementaDepositoYAgregado(t *testing.T) {
	f := newFixture(t)
	purchase := f.createPurchase(t, 20, 60000)

	received, err := f.uc.Receive(context.Background(), testActor, purchase.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.PurchaseStatusReceived, received.Status)
	assert.Equal(t, testActor.Name, received.ReceivedBy)
	require.NotNil(t, received.ReceivedAt)

	assert.Equal(t, 25, f.product(t).Stock, "recibir suma al agregado del producto")
	assert.Equal(t, 20, f.stockEntry(t).Quantity, "recibir suma a la fila (producto, depósito)")
}

func TestReceive_DobleRecepcion_RetornaInvalidState(t *testing.T) {
	f := newFixture(t)
	purchase := f.createPurchase(t, 20, 60000)

	_, err := f.uc.Receive(context.Background(), testActor, purchase.ID)
	require.NoError(t, err)

	_, err = f.uc.Receive(context.Background(), testActor, purchase.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "el stock debe entrar exactamente una vez")

	assert.Equal(t, 25, f.product(t).Stock)
	assert.Equal(t, 20, f.stockEntry(t).Quantity)
}

func TestReceive_CompraInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Receive(context.Background(), testActor, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
