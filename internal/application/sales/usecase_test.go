package sales_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubengianelli8/Sistema-gestion/internal/application/audit"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/dto"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/sales"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/infrastructure/memstore"
	"github.com/rubengianelli8/Sistema-gestion/pkg/logger"
)

var testActor = entity.Actor{ID: "u-1", Name: "Vendedor Test", Role: entity.RoleVendedor}

// fixture arma el caso de uso sobre un store en memoria con un producto y un
// cliente cargados.
type fixture struct {
	store      *memstore.Store
	uc         *sales.UseCase
	recorder   *audit.Recorder
	productID  string
	customerID string
}

func newFixture(t *testing.T, stock int) *fixture {
	t.Helper()
	store := memstore.New()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	recorder := audit.NewRecorder(memstore.NewAuditRepository(store), nil, log, nil)
	t.Cleanup(recorder.Close)

	productRepo := memstore.NewProductRepository(store)
	customerRepo := memstore.NewCustomerRepository(store)

	productID := uuid.New().String()
	require.NoError(t, productRepo.Create(&entity.Product{
		ID:          productID,
		Name:        "Yerba Mate 1kg",
		RetailPrice: decimal.NewFromInt(5000),
		Stock:       stock,
	}))
	customerID := uuid.New().String()
	require.NoError(t, customerRepo.Create(&entity.Customer{
		ID:      customerID,
		Name:    "Almacén Don Pedro",
		Balance: decimal.Zero,
	}))

	uc := sales.NewUseCase(
		memstore.NewTxRunner(store),
		productRepo,
		customerRepo,
		memstore.NewSaleRepository(store),
		recorder,
	)
	return &fixture{
		store:      store,
		uc:         uc,
		recorder:   recorder,
		productID:  productID,
		customerID: customerID,
	}
}

func (f *fixture) product(t *testing.T) *entity.Product {
	t.Helper()
	p, err := memstore.NewProductRepository(f.store).GetByID(f.productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func (f *fixture) customer(t *testing.T) *entity.Customer {
	t.Helper()
	c, err := memstore.NewCustomerRepository(f.store).GetByID(f.customerID)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func lineFor(productID string, qty int, subtotal int64) dto.LineItemDTO {
	return dto.LineItemDTO{
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: decimal.NewFromInt(subtotal).Div(decimal.NewFromInt(int64(qty))),
		Subtotal:  decimal.NewFromInt(subtotal),
	}
}

func TestCreate_DescuentaStockYSumaSaldo(t *testing.T) {
	f := newFixture(t, 10)

	resp, err := f.uc.Create(context.Background(), testActor, dto.CreateSaleRequest{
		CustomerID:    f.customerID,
		Items:         []dto.LineItemDTO{lineFor(f.productID, 3, 15000)},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusCompleted, resp.Status)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(15000)), "el total debe ser la suma de subtotales")
	assert.Equal(t, 7, f.product(t).Stock, "la venta debe descontar el stock agregado")
	assert.True(t, f.customer(t).Balance.Equal(decimal.NewFromInt(15000)),
		"la venta debe sumar el total al saldo de cuenta corriente")
}

func TestCreate_SinCliente_NoTocaSaldos(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.uc.Create(context.Background(), testActor, dto.CreateSaleRequest{
		Items:         []dto.LineItemDTO{lineFor(f.productID, 2, 10000)},
		PaymentMethod: entity.PaymentCard,
	})
	require.NoError(t, err)

	assert.Equal(t, 8, f.product(t).Stock)
	assert.True(t, f.customer(t).Balance.IsZero(), "venta de mostrador no debe tocar saldos")
}

func TestCreate_StockInsuficiente_NoDejaEfectos(t *testing.T) {
	f := newFixture(t, 10)

	// Segundo producto con stock corto: la segunda línea corta la venta.
	otherID := uuid.New().String()
	require.NoError(t, memstore.NewProductRepository(f.store).Create(&entity.Product{
		ID:    otherID,
		Name:  "Azúcar 1kg",
		Stock: 1,
	}))

	_, err := f.uc.Create(context.Background(), testActor, dto.CreateSaleRequest{
		CustomerID: f.customerID,
		Items: []dto.LineItemDTO{
			lineFor(f.productID, 5, 25000),
			lineFor(otherID, 2, 3000),
		},
		PaymentMethod: entity.PaymentCash,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La transacción revierte la primera línea y el saldo.
	assert.Equal(t, 10, f.product(t).Stock, "un fallo a mitad de camino no debe dejar descuentos parciales")
	assert.True(t, f.customer(t).Balance.IsZero())

	list, err := f.uc.List(10)
	require.NoError(t, err)
	assert.Empty(t, list, "no debe quedar ninguna venta registrada")
}

func TestCreate_MetodoPagoInvalido(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.uc.Create(context.Background(), testActor, dto.CreateSaleRequest{
		Items:         []dto.LineItemDTO{lineFor(f.productID, 1, 5000)},
		PaymentMethod: "cheque",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_ClienteInexistente(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.uc.Create(context.Background(), testActor, dto.CreateSaleRequest{
		CustomerID:    uuid.New().String(),
		Items:         []dto.LineItemDTO{lineFor(f.productID, 1, 5000)},
		PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVoid_ReponeStockYRevierteSaldo(t *testing.T) {
	f := newFixture(t, 10)

	sale, err := f.uc.Create(context.Background(), testActor, dto.CreateSaleRequest{
		CustomerID:    f.customerID,
		Items:         []dto.LineItemDTO{lineFor(f.productID, 4, 20000)},
		PaymentMethod: entity.PaymentTransfer,
	})
	require.NoError(t, err)
	require.Equal(t, 6, f.product(t).Stock)

	voided, err := f.uc.Void(context.Background(), testActor, sale.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusVoided, voided.Status)
	assert.Equal(t, 10, f.product(t).Stock, "anular debe reponer el stock de cada línea")
	assert.True(t, f.customer(t).Balance.IsZero(), "anular debe descontar el total del saldo")
}

func TestVoid_DobleAnulacion_RetornaInvalidState(t *testing.T) {
	f := newFixture(t, 10)

	sale, err := f.uc.Create(context.Background(), testActor, dto.CreateSaleRequest{
		CustomerID:    f.customerID,
		Items:         []dto.LineItemDTO{lineFor(f.productID, 2, 10000)},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	_, err = f.uc.Void(context.Background(), testActor, sale.ID)
	require.NoError(t, err)

	_, err = f.uc.Void(context.Background(), testActor, sale.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "la segunda anulación debe rechazarse")

	// Los efectos se revirtieron exactamente una vez.
	assert.Equal(t, 10, f.product(t).Stock)
	assert.True(t, f.customer(t).Balance.IsZero())
}

func TestVoid_VentaInexistente(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.uc.Void(context.Background(), testActor, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByCustomer_SoloVentasDelCliente(t *testing.T) {
	f := newFixture(t, 20)

	_, err := f.uc.Create(context.Background(), testActor, dto.CreateSaleRequest{
		CustomerID:    f.customerID,
		Items:         []dto.LineItemDTO{lineFor(f.productID, 1, 5000)},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)
	_, err = f.uc.Create(context.Background(), testActor, dto.CreateSaleRequest{
		Items:         []dto.LineItemDTO{lineFor(f.productID, 1, 5000)},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	history, err := f.uc.ListByCustomer(f.customerID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, f.customerID, history[0].CustomerID)
}
