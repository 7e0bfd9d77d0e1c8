package permission

import "github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"

// Acciones del sistema, con el formato modulo:verbo.
const (
	ProductsView   = "productos:ver"
	ProductsCreate = "productos:crear"
	ProductsEdit   = "productos:editar"
	ProductsDelete = "productos:eliminar"

	SalesView   = "ventas:ver"
	SalesCreate = "ventas:crear"
	SalesVoid   = "ventas:anular"

	CustomersView   = "clientes:ver"
	CustomersCreate = "clientes:crear"
	CustomersEdit   = "clientes:editar"
	CustomersDelete = "clientes:eliminar"

	QuotesView    = "presupuestos:ver"
	QuotesCreate  = "presupuestos:crear"
	QuotesEdit    = "presupuestos:editar"
	QuotesDelete  = "presupuestos:eliminar"
	QuotesConvert = "presupuestos:convertir"

	UsersView   = "usuarios:ver"
	UsersCreate = "usuarios:crear"
	UsersEdit   = "usuarios:editar"
	UsersDelete = "usuarios:eliminar"

	ReportsView = "reportes:ver"

	SuppliersView   = "proveedores:ver"
	SuppliersCreate = "proveedores:crear"
	SuppliersEdit   = "proveedores:editar"
	SuppliersDelete = "proveedores:eliminar"

	PurchasesView    = "compras:ver"
	PurchasesCreate  = "compras:crear"
	PurchasesReceive = "compras:recibir"

	WarehousesView   = "depositos:ver"
	WarehousesCreate = "depositos:crear"
	WarehousesEdit   = "depositos:editar"
	WarehousesDelete = "depositos:eliminar"
)

// Table mapea rol -> conjunto de acciones permitidas. Es inmutable: se
// construye una vez al arrancar el proceso y se inyecta donde se necesite.
type Table struct {
	byRole map[string]map[string]struct{}
}

// Default construye la tabla de permisos del sistema.
func Default() *Table {
	grants := map[string][]string{
		// Admin tiene todos los permisos
		entity.RoleAdmin: {
			ProductsView, ProductsCreate, ProductsEdit, ProductsDelete,
			SalesView, SalesCreate, SalesVoid,
			CustomersView, CustomersCreate, CustomersEdit, CustomersDelete,
			QuotesView, QuotesCreate, QuotesEdit, QuotesDelete, QuotesConvert,
			UsersView, UsersCreate, UsersEdit, UsersDelete,
			ReportsView,
			SuppliersView, SuppliersCreate, SuppliersEdit, SuppliersDelete,
			PurchasesView, PurchasesCreate, PurchasesReceive,
			WarehousesView, WarehousesCreate, WarehousesEdit, WarehousesDelete,
		},
		// Vendedor: ventas, clientes y presupuestos completos; productos solo ver
		entity.RoleVendedor: {
			ProductsView,
			SalesView, SalesCreate,
			CustomersView, CustomersCreate, CustomersEdit,
			QuotesView, QuotesCreate, QuotesEdit, QuotesConvert,
		},
		// Almacenero: productos e inventario completo + depósitos + compras
		entity.RoleAlmacenero: {
			ProductsView, ProductsCreate, ProductsEdit, ProductsDelete,
			WarehousesView, WarehousesCreate, WarehousesEdit,
			PurchasesView, PurchasesCreate, PurchasesReceive,
			SuppliersView,
		},
		// Contador: solo lectura de ventas y reportes
		entity.RoleContador: {
			SalesView, ReportsView, CustomersView, ProductsView,
		},
	}

	t := &Table{byRole: make(map[string]map[string]struct{}, len(grants))}
	for role, actions := range grants {
		set := make(map[string]struct{}, len(actions))
		for _, a := range actions {
			set[a] = struct{}{}
		}
		t.byRole[role] = set
	}
	return t
}

// Allowed indica si el rol tiene la acción. Un rol desconocido no tiene ninguna.
func (t *Table) Allowed(role, action string) bool {
	set, ok := t.byRole[role]
	if !ok {
		return false
	}
	_, ok = set[action]
	return ok
}

// For devuelve las acciones del rol (para respuestas de API).
func (t *Table) For(role string) []string {
	set, ok := t.byRole[role]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	return out
}
