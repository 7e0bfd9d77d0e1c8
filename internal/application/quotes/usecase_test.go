package quotes_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubengianelli8/Sistema-gestion/internal/application/audit"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/dto"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/quotes"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/infrastructure/memstore"
	"github.com/rubengianelli8/Sistema-gestion/pkg/logger"
)

var testActor = entity.Actor{ID: "u-1", Name: "Vendedor Test", Role: entity.RoleVendedor}

type fixture struct {
	store      *memstore.Store
	uc         *quotes.UseCase
	productID  string
	customerID string
}

// newFixture arma el caso de uso sobre un store en memoria. El flag controla
// si la conversión actualiza el saldo del cliente.
func newFixture(t *testing.T, stock int, convertUpdatesBalance bool) *fixture {
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
		Name:        "Harina 000 x25kg",
		RetailPrice: decimal.NewFromInt(12000),
		Stock:       stock,
	}))
	customerID := uuid.New().String()
	require.NoError(t, customerRepo.Create(&entity.Customer{
		ID:      customerID,
		Name:    "Panadería La Espiga",
		Balance: decimal.Zero,
	}))

	uc := quotes.NewUseCase(
		memstore.NewTxRunner(store),
		productRepo,
		customerRepo,
		memstore.NewQuoteRepository(store),
		recorder,
		convertUpdatesBalance,
	)
	return &fixture{store: store, uc: uc, productID: productID, customerID: customerID}
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

func (f *fixture) createQuote(t *testing.T, qty int, subtotal int64) *dto.QuoteResponse {
	t.Helper()
	resp, err := f.uc.Create(testActor, dto.CreateQuoteRequest{
		CustomerID: f.customerID,
		Items: []dto.LineItemDTO{{
			ProductID: f.productID,
			Quantity:  qty,
			UnitPrice: decimal.NewFromInt(subtotal).Div(decimal.NewFromInt(int64(qty))),
			Subtotal:  decimal.NewFromInt(subtotal),
		}},
	})
	require.NoError(t, err)
	return resp
}

func TestCreate_NoReservaStock(t *testing.T) {
	f := newFixture(t, 10, true)

	quote := f.createQuote(t, 8, 96000)

	assert.Equal(t, entity.QuoteStatusPending, quote.Status)
	assert.Equal(t, 15, quote.ValidityDays, "sin días de validez debe aplicar el default")
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(96000)))
	assert.Equal(t, 10, f.product(t).Stock, "crear un presupuesto no debe tocar stock")
	assert.True(t, f.customer(t).Balance.IsZero(), "crear un presupuesto no debe tocar saldos")
}

func TestCreate_ProductoInexistente(t *testing.T) {
	f := newFixture(t, 10, true)

	_, err := f.uc.Create(testActor, dto.CreateQuoteRequest{
		CustomerID: f.customerID,
		Items: []dto.LineItemDTO{{
			ProductID: uuid.New().String(),
			Quantity:  1,
			Subtotal:  decimal.NewFromInt(100),
		}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus_AprobarYRechazar(t *testing.T) {
	f := newFixture(t, 10, true)
	quote := f.createQuote(t, 2, 24000)

	updated, err := f.uc.UpdateStatus(testActor, quote.ID, entity.QuoteStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusApproved, updated.Status)

	updated, err = f.uc.UpdateStatus(testActor, quote.ID, entity.QuoteStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusRejected, updated.Status)
}

func TestUpdateStatus_NoPermiteConvertirManualmente(t *testing.T) {
	f := newFixture(t, 10, true)
	quote := f.createQuote(t, 2, 24000)

	_, err := f.uc.UpdateStatus(testActor, quote.ID, entity.QuoteStatusConverted)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"convertido no es un estado alcanzable por cambio manual")
}

func TestConvert_GeneraVentaConElTotalDelPresupuesto(t *testing.T) {
	f := newFixture(t, 10, true)
	quote := f.createQuote(t, 4, 48000)

	sale, err := f.uc.Convert(context.Background(), testActor, quote.ID, dto.ConvertQuoteRequest{
		PaymentMethod: entity.PaymentTransfer,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusCompleted, sale.Status)
	assert.True(t, sale.Total.Equal(quote.Total), "la venta debe conservar el total del presupuesto")
	assert.Equal(t, entity.PaymentTransfer, sale.PaymentMethod)
	assert.Equal(t, 6, f.product(t).Stock, "convertir debe descontar stock")
	assert.True(t, f.customer(t).Balance.Equal(quote.Total),
		"con el flag activo la conversión suma al saldo del cliente")

	converted, err := f.uc.Get(quote.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusConverted, converted.Status)
	assert.Equal(t, sale.ID, converted.ConvertedSaleID)
}

func TestConvert_SinMetodoDePago_UsaEfectivo(t *testing.T) {
	f := newFixture(t, 10, true)
	quote := f.createQuote(t, 1, 12000)

	sale, err := f.uc.Convert(context.Background(), testActor, quote.ID, dto.ConvertQuoteRequest{})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCash, sale.PaymentMethod)
}

func TestConvert_FlagApagado_NoTocaSaldo(t *testing.T) {
	f := newFixture(t, 10, false)
	quote := f.createQuote(t, 3, 36000)

	_, err := f.uc.Convert(context.Background(), testActor, quote.ID, dto.ConvertQuoteRequest{})
	require.NoError(t, err)

	assert.Equal(t, 7, f.product(t).Stock, "el stock se descuenta igual con el flag apagado")
	assert.True(t, f.customer(t).Balance.IsZero(),
		"con el flag apagado la conversión no debe tocar el saldo")
}

func TestConvert_DobleConversion_RetornaInvalidState(t *testing.T) {
	f := newFixture(t, 10, true)
	quote := f.createQuote(t, 2, 24000)

	_, err := f.uc.Convert(context.Background(), testActor, quote.ID, dto.ConvertQuoteRequest{})
	require.NoError(t, err)

	_, err = f.uc.Convert(context.Background(), testActor, quote.ID, dto.ConvertQuoteRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidState, "un presupuesto se convierte a lo sumo una vez")

	// El stock se descontó exactamente una vez.
	assert.Equal(t, 8, f.product(t).Stock)
}

func TestUpdateStatus_NoPisaUnPresupuestoConvertido(t *testing.T) {
	f := newFixture(t, 10, true)
	quote := f.createQuote(t, 2, 24000)

	_, err := f.uc.Convert(context.Background(), testActor, quote.ID, dto.ConvertQuoteRequest{})
	require.NoError(t, err)

	// Un aprobar que llega después de la conversión afecta cero filas.
	err = memstore.NewQuoteRepository(f.store).UpdateStatus(quote.ID, entity.QuoteStatusApproved)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	stored, err := memstore.NewQuoteRepository(f.store).GetByID(quote.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusConverted, stored.Status)
}

func TestConvert_PresupuestoRechazado_SePuedeConvertir(t *testing.T) {
	// Rechazar un presupuesto no es definitivo: el cliente puede volver y
	// cerrar la venta igual. Solo la conversión previa bloquea.
	f := newFixture(t, 10, true)
	quote := f.createQuote(t, 2, 24000)

	_, err := f.uc.UpdateStatus(testActor, quote.ID, entity.QuoteStatusRejected)
	require.NoError(t, err)

	sale, err := f.uc.Convert(context.Background(), testActor, quote.ID, dto.ConvertQuoteRequest{})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCompleted, sale.Status)

	stored, err := memstore.NewQuoteRepository(f.store).GetByID(quote.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusConverted, stored.Status)
}

func TestConvert_StockInsuficiente_NoDejaEfectos(t *testing.T) {
	// El presupuesto se creó cuando había stock, pero al convertir ya no hay.
	f := newFixture(t, 10, true)
	quote := f.createQuote(t, 8, 96000)

	require.NoError(t, memstore.NewProductRepository(f.store).DecrementStock(f.productID, 5))

	_, err := f.uc.Convert(context.Background(), testActor, quote.ID, dto.ConvertQuoteRequest{})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La transacción revierte la transición: el presupuesto sigue pendiente
	// y puede convertirse más adelante.
	current, err := f.uc.Get(quote.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusPending, current.Status)
	assert.Empty(t, current.ConvertedSaleID)
	assert.Equal(t, 5, f.product(t).Stock, "no debe quedar descuento parcial")
	assert.True(t, f.customer(t).Balance.IsZero())
}
