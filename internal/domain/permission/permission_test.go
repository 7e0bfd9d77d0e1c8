package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/permission"
)

func TestDefault_AdminTieneTodo(t *testing.T) {
	table := permission.Default()

	for _, action := range []string{
		permission.ProductsDelete,
		permission.SalesVoid,
		permission.QuotesConvert,
		permission.PurchasesReceive,
		permission.UsersDelete,
		permission.ReportsView,
	} {
		assert.True(t, table.Allowed(entity.RoleAdmin, action), "admin debe tener %s", action)
	}
}

func TestDefault_VendedorVendeYPresupuesta(t *testing.T) {
	table := permission.Default()

	assert.True(t, table.Allowed(entity.RoleVendedor, permission.SalesCreate))
	assert.True(t, table.Allowed(entity.RoleVendedor, permission.QuotesConvert))
	assert.True(t, table.Allowed(entity.RoleVendedor, permission.CustomersCreate))

	assert.False(t, table.Allowed(entity.RoleVendedor, permission.SalesVoid),
		"anular ventas no es del vendedor")
	assert.False(t, table.Allowed(entity.RoleVendedor, permission.ProductsCreate))
	assert.False(t, table.Allowed(entity.RoleVendedor, permission.UsersView))
}

func TestDefault_AlmaceneroManejaStockNoVentas(t *testing.T) {
	table := permission.Default()

	assert.True(t, table.Allowed(entity.RoleAlmacenero, permission.ProductsCreate))
	assert.True(t, table.Allowed(entity.RoleAlmacenero, permission.PurchasesReceive))
	assert.True(t, table.Allowed(entity.RoleAlmacenero, permission.WarehousesCreate))

	assert.False(t, table.Allowed(entity.RoleAlmacenero, permission.SalesCreate))
	assert.False(t, table.Allowed(entity.RoleAlmacenero, permission.SalesView))
}

func TestDefault_ContadorSoloLectura(t *testing.T) {
	table := permission.Default()

	assert.True(t, table.Allowed(entity.RoleContador, permission.SalesView))
	assert.True(t, table.Allowed(entity.RoleContador, permission.ReportsView))

	assert.False(t, table.Allowed(entity.RoleContador, permission.SalesCreate))
	assert.False(t, table.Allowed(entity.RoleContador, permission.SalesVoid))
	assert.False(t, table.Allowed(entity.RoleContador, permission.PurchasesView))
}

func TestAllowed_RolDesconocido(t *testing.T) {
	table := permission.Default()
	assert.False(t, table.Allowed("gerente", permission.SalesView))
	assert.False(t, table.Allowed("", permission.SalesView))
}

func TestFor_DevuelveLasAccionesDelRol(t *testing.T) {
	table := permission.Default()

	actions := table.For(entity.RoleContador)
	assert.ElementsMatch(t, []string{
		permission.SalesView,
		permission.ReportsView,
		permission.CustomersView,
		permission.ProductsView,
	}, actions)

	assert.Nil(t, table.For("desconocido"))
}
