package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubengianelli8/Sistema-gestion/internal/application/audit"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/dto"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/usecase"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/infrastructure/memstore"
	"github.com/rubengianelli8/Sistema-gestion/pkg/logger"
)

var adminActor = entity.Actor{ID: "a-1", Name: "Admin Test", Role: entity.RoleAdmin}

func newRecorder(t *testing.T, store *memstore.Store) *audit.Recorder {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	rec := audit.NewRecorder(memstore.NewAuditRepository(store), nil, log, nil)
	t.Cleanup(rec.Close)
	return rec
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// Productos

func newProductUC(t *testing.T) (*usecase.ProductUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	uc := usecase.NewProductUseCase(
		memstore.NewProductRepository(store),
		memstore.NewCategoryRepository(store),
		memstore.NewStockRepository(store),
		newRecorder(t, store),
	)
	return uc, store
}

func TestProductCreate_CodigoDeBarrasDuplicado(t *testing.T) {
	uc, _ := newProductUC(t)

	_, err := uc.Create(adminActor, dto.CreateProductRequest{
		Name:    "Fideos Tirabuzón",
		Barcode: "7790001000011",
		Stock:   10,
	})
	require.NoError(t, err)

	_, err = uc.Create(adminActor, dto.CreateProductRequest{
		Name:    "Fideos Moño",
		Barcode: "7790001000011",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el código de barras es único cuando no está vacío")
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc, _ := newProductUC(t)

	_, err := uc.Create(adminActor, dto.CreateProductRequest{
		Name:       "Galletitas",
		CategoryID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_MarcaStockBajo(t *testing.T) {
	uc, _ := newProductUC(t)

	resp, err := uc.Create(adminActor, dto.CreateProductRequest{
		Name:     "Leche Entera 1L",
		Stock:    3,
		MinStock: 5,
	})
	require.NoError(t, err)
	assert.True(t, resp.LowStock, "stock por debajo del mínimo debe marcarse")
}

func TestProductUpdate_NoTocaStock(t *testing.T) {
	uc, store := newProductUC(t)

	created, err := uc.Create(adminActor, dto.CreateProductRequest{Name: "Arroz Largo Fino", Stock: 12})
	require.NoError(t, err)

	_, err = uc.Update(adminActor, created.ID, dto.UpdateProductRequest{Name: strPtr("Arroz Largo Fino 1kg")})
	require.NoError(t, err)

	p, err := memstore.NewProductRepository(store).GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arroz Largo Fino 1kg", p.Name)
	assert.Equal(t, 12, p.Stock, "la edición de producto no debe mover stock")
}

func TestProductSearch_PorNombreYCodigo(t *testing.T) {
	uc, _ := newProductUC(t)

	_, err := uc.Create(adminActor, dto.CreateProductRequest{Name: "Detergente Limón", Barcode: "779111"})
	require.NoError(t, err)
	_, err = uc.Create(adminActor, dto.CreateProductRequest{Name: "Lavandina"})
	require.NoError(t, err)

	byName, err := uc.Search("deterg", 10)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Detergente Limón", byName[0].Name)

	byCode, err := uc.Search("779111", 10)
	require.NoError(t, err)
	require.Len(t, byCode, 1)
}

// Categorías

func TestCategoryDelete_BloqueadaConProductos(t *testing.T) {
	store := memstore.New()
	rec := newRecorder(t, store)
	categoryUC := usecase.NewCategoryUseCase(
		memstore.NewCategoryRepository(store),
		memstore.NewProductRepository(store),
		rec,
	)
	productUC := usecase.NewProductUseCase(
		memstore.NewProductRepository(store),
		memstore.NewCategoryRepository(store),
		memstore.NewStockRepository(store),
		rec,
	)

	category, err := categoryUC.Create(adminActor, dto.CategoryRequest{Name: "Almacén"})
	require.NoError(t, err)
	_, err = productUC.Create(adminActor, dto.CreateProductRequest{Name: "Polenta", CategoryID: category.ID})
	require.NoError(t, err)

	err = categoryUC.Delete(adminActor, category.ID)
	assert.ErrorIs(t, err, domain.ErrInUse, "una categoría con productos no se elimina")

	// Sin productos asociados sí se puede.
	empty, err := categoryUC.Create(adminActor, dto.CategoryRequest{Name: "Perfumería"})
	require.NoError(t, err)
	assert.NoError(t, categoryUC.Delete(adminActor, empty.ID))
}

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	store := memstore.New()
	uc := usecase.NewCategoryUseCase(
		memstore.NewCategoryRepository(store),
		memstore.NewProductRepository(store),
		newRecorder(t, store),
	)

	_, err := uc.Create(adminActor, dto.CategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	_, err = uc.Create(adminActor, dto.CategoryRequest{Name: "Bebidas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestWarehouseGetByID_DevuelveElDeposito(t *testing.T) {
	store := memstore.New()
	uc := usecase.NewWarehouseUseCase(memstore.NewWarehouseRepository(store), newRecorder(t, store))

	created, err := uc.Create(adminActor, dto.WarehouseRequest{Name: "Depósito Central"})
	require.NoError(t, err)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Depósito Central", got.Name)

	_, err = uc.GetByID("w-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Usuarios

func newUserUC(t *testing.T) (*usecase.UserUseCase, *memstore.UserRepository) {
	t.Helper()
	store := memstore.New()
	repo := memstore.NewUserRepository(store)
	return usecase.NewUserUseCase(repo, newRecorder(t, store)), repo
}

func seedUser(t *testing.T, repo *memstore.UserRepository, id, email, role string) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.User{
		ID: id, Email: email, Name: email, Role: role, Active: true,
	}))
}

func TestUserGetByID_DevuelveElUsuario(t *testing.T) {
	uc, repo := newUserUC(t)
	seedUser(t, repo, "u-2", "vendedor@gestion.local", entity.RoleVendedor)

	u, err := uc.GetByID("u-2")
	require.NoError(t, err)
	assert.Equal(t, "vendedor@gestion.local", u.Email)

	_, err = uc.GetByID("u-999")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserDeactivate_EsBajaLogica(t *testing.T) {
	uc, repo := newUserUC(t)
	seedUser(t, repo, "u-2", "vendedor@gestion.local", entity.RoleVendedor)

	require.NoError(t, uc.Deactivate(adminActor, "u-2"))

	u, err := repo.GetByID("u-2")
	require.NoError(t, err)
	require.NotNil(t, u, "la baja es lógica: el usuario sigue existiendo")
	assert.False(t, u.Active)
}

func TestUserDeactivate_NoPermiteAutoBaja(t *testing.T) {
	uc, repo := newUserUC(t)
	seedUser(t, repo, adminActor.ID, "admin@gestion.local", entity.RoleAdmin)

	err := uc.Deactivate(adminActor, adminActor.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un admin no puede darse de baja a sí mismo")
}

func TestUserUpdate_NoPermiteAutoDesactivarse(t *testing.T) {
	uc, repo := newUserUC(t)
	seedUser(t, repo, adminActor.ID, "admin@gestion.local", entity.RoleAdmin)

	_, err := uc.Update(adminActor, adminActor.ID, dto.UpdateUserRequest{Active: boolPtr(false)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_RolInvalido(t *testing.T) {
	uc, repo := newUserUC(t)
	seedUser(t, repo, "u-2", "vendedor@gestion.local", entity.RoleVendedor)

	_, err := uc.Update(adminActor, "u-2", dto.UpdateUserRequest{Role: strPtr("gerente")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_EmailDeOtroUsuario(t *testing.T) {
	uc, repo := newUserUC(t)
	seedUser(t, repo, "u-2", "uno@gestion.local", entity.RoleVendedor)
	seedUser(t, repo, "u-3", "dos@gestion.local", entity.RoleVendedor)

	_, err := uc.Update(adminActor, "u-3", dto.UpdateUserRequest{Email: strPtr("uno@gestion.local")})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Clientes

func newCustomerUC(t *testing.T) (*usecase.CustomerUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	uc := usecase.NewCustomerUseCase(
		memstore.NewCustomerRepository(store),
		memstore.NewSaleRepository(store),
		newRecorder(t, store),
	)
	return uc, store
}

func TestCustomerCreate_EmailDuplicado(t *testing.T) {
	uc, _ := newCustomerUC(t)

	_, err := uc.Create(adminActor, dto.CreateCustomerRequest{Name: "Cliente Uno", Email: "c@cliente.com"})
	require.NoError(t, err)
	_, err = uc.Create(adminActor, dto.CreateCustomerRequest{Name: "Cliente Dos", Email: "c@cliente.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCustomerHistory_DevuelveSusVentas(t *testing.T) {
	uc, store := newCustomerUC(t)

	customer, err := uc.Create(adminActor, dto.CreateCustomerRequest{Name: "Kiosco 24"})
	require.NoError(t, err)

	saleRepo := memstore.NewSaleRepository(store)
	require.NoError(t, saleRepo.Create(&entity.Sale{
		ID:         uuid.New().String(),
		CustomerID: customer.ID,
		Total:      decimal.NewFromInt(8000),
		Status:     entity.SaleStatusCompleted,
	}))
	require.NoError(t, saleRepo.Create(&entity.Sale{
		ID:         uuid.New().String(),
		CustomerID: customer.ID,
		Total:      decimal.NewFromInt(2500),
		Status:     entity.SaleStatusVoided,
	}))
	require.NoError(t, saleRepo.Create(&entity.Sale{
		ID:     uuid.New().String(),
		Total:  decimal.NewFromInt(999),
		Status: entity.SaleStatusCompleted,
	}))

	history, err := uc.History(customer.ID)
	require.NoError(t, err)
	require.Len(t, history.Sales, 2, "el historial solo incluye ventas del cliente")
	assert.Equal(t, 2, history.Count)
	assert.True(t, history.TotalSpent.Equal(decimal.NewFromInt(8000)),
		"las ventas anuladas no suman al total gastado")
}

// Proveedores y precios

func TestSupplierSetPrice_UpsertPorParProductoProveedor(t *testing.T) {
	store := memstore.New()
	rec := newRecorder(t, store)
	productRepo := memstore.NewProductRepository(store)
	supplierRepo := memstore.NewSupplierRepository(store)
	uc := usecase.NewSupplierUseCase(
		supplierRepo,
		memstore.NewSupplierPriceRepository(store),
		productRepo,
		rec,
	)

	productID := uuid.New().String()
	require.NoError(t, productRepo.Create(&entity.Product{ID: productID, Name: "Queso Cremoso"}))
	supplierID := uuid.New().String()
	require.NoError(t, supplierRepo.Create(&entity.Supplier{ID: supplierID, Name: "Lácteos Sur", Active: true}))

	first, err := uc.SetPrice(adminActor, dto.SupplierPriceRequest{
		ProductID:  productID,
		SupplierID: supplierID,
		Price:      decimal.NewFromInt(4200),
	})
	require.NoError(t, err)
	assert.Equal(t, "Queso Cremoso", first.ProductName, "el nombre del producto se denormaliza")

	// Segundo SetPrice del mismo par pisa el precio, no agrega otra fila.
	_, err = uc.SetPrice(adminActor, dto.SupplierPriceRequest{
		ProductID:  productID,
		SupplierID: supplierID,
		Price:      decimal.NewFromInt(4550),
	})
	require.NoError(t, err)

	prices, err := uc.PricesByProduct(productID)
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.True(t, prices[0].Price.Equal(decimal.NewFromInt(4550)))
}
