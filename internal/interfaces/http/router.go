package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rubengianelli8/Sistema-gestion/internal/application/auth"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/purchasing"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/quotes"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/sales"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/usecase"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/permission"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	WarehouseUC *usecase.WarehouseUseCase
	SupplierUC  *usecase.SupplierUseCase
	SystemUC    *usecase.SystemUseCase
	SalesUC     *sales.UseCase
	QuotesUC    *quotes.UseCase
	PurchasesUC *purchasing.UseCase
	Perms       *permission.Table
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	perms := deps.Perms

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/register", RequirePermission(perms, permission.UsersCreate), authHandler.Register)

	// Usuarios (solo admin vía permisos)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequirePermission(perms, permission.UsersView), userHandler.List)
	users.Get("/:id", RequirePermission(perms, permission.UsersView), userHandler.GetByID)
	users.Put("/:id", RequirePermission(perms, permission.UsersEdit), userHandler.Update)
	users.Delete("/:id", RequirePermission(perms, permission.UsersDelete), userHandler.Delete)

	// Categorías (mismos permisos que productos)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", RequirePermission(perms, permission.ProductsView), categoryHandler.List)
	categories.Post("/", RequirePermission(perms, permission.ProductsCreate), categoryHandler.Create)
	categories.Put("/:id", RequirePermission(perms, permission.ProductsEdit), categoryHandler.Update)
	categories.Delete("/:id", RequirePermission(perms, permission.ProductsDelete), categoryHandler.Delete)

	// Productos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", RequirePermission(perms, permission.ProductsView), productHandler.List)
	products.Get("/search", RequirePermission(perms, permission.ProductsView), productHandler.Search)
	products.Get("/barcode/:barcode", RequirePermission(perms, permission.ProductsView), productHandler.GetByBarcode)
	products.Get("/:id", RequirePermission(perms, permission.ProductsView), productHandler.GetByID)
	products.Get("/:id/stock", RequirePermission(perms, permission.ProductsView), productHandler.Stock)
	products.Post("/", RequirePermission(perms, permission.ProductsCreate), productHandler.Create)
	products.Put("/:id", RequirePermission(perms, permission.ProductsEdit), productHandler.Update)
	products.Delete("/:id", RequirePermission(perms, permission.ProductsDelete), productHandler.Delete)

	// Clientes
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", RequirePermission(perms, permission.CustomersView), customerHandler.List)
	customers.Get("/:id", RequirePermission(perms, permission.CustomersView), customerHandler.GetByID)
	customers.Get("/:id/sales", RequirePermission(perms, permission.CustomersView), customerHandler.History)
	customers.Post("/", RequirePermission(perms, permission.CustomersCreate), customerHandler.Create)
	customers.Put("/:id", RequirePermission(perms, permission.CustomersEdit), customerHandler.Update)
	customers.Delete("/:id", RequirePermission(perms, permission.CustomersDelete), customerHandler.Delete)

	// Ventas
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SalesUC)
	salesGroup.Get("/", RequirePermission(perms, permission.SalesView), saleHandler.List)
	salesGroup.Get("/:id", RequirePermission(perms, permission.SalesView), saleHandler.GetByID)
	salesGroup.Post("/", RequirePermission(perms, permission.SalesCreate), saleHandler.Create)
	salesGroup.Post("/:id/void", RequirePermission(perms, permission.SalesVoid), saleHandler.Void)

	// Presupuestos
	quotesGroup := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuotesUC)
	quotesGroup.Get("/", RequirePermission(perms, permission.QuotesView), quoteHandler.List)
	quotesGroup.Get("/:id", RequirePermission(perms, permission.QuotesView), quoteHandler.GetByID)
	quotesGroup.Post("/", RequirePermission(perms, permission.QuotesCreate), quoteHandler.Create)
	quotesGroup.Put("/:id/status", RequirePermission(perms, permission.QuotesEdit), quoteHandler.UpdateStatus)
	quotesGroup.Post("/:id/convert", RequirePermission(perms, permission.QuotesConvert), quoteHandler.Convert)

	// Compras
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchasesUC)
	purchases.Get("/", RequirePermission(perms, permission.PurchasesView), purchaseHandler.List)
	purchases.Get("/:id", RequirePermission(perms, permission.PurchasesView), purchaseHandler.GetByID)
	purchases.Post("/", RequirePermission(perms, permission.PurchasesCreate), purchaseHandler.Create)
	purchases.Post("/:id/receive", RequirePermission(perms, permission.PurchasesReceive), purchaseHandler.Receive)

	// Depósitos
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", RequirePermission(perms, permission.WarehousesView), warehouseHandler.List)
	warehouses.Get("/:id", RequirePermission(perms, permission.WarehousesView), warehouseHandler.GetByID)
	warehouses.Post("/", RequirePermission(perms, permission.WarehousesCreate), warehouseHandler.Create)
	warehouses.Put("/:id", RequirePermission(perms, permission.WarehousesEdit), warehouseHandler.Update)
	warehouses.Delete("/:id", RequirePermission(perms, permission.WarehousesDelete), warehouseHandler.Delete)

	// Proveedores y precios por proveedor
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", RequirePermission(perms, permission.SuppliersView), supplierHandler.List)
	suppliers.Get("/:id", RequirePermission(perms, permission.SuppliersView), supplierHandler.GetByID)
	suppliers.Get("/:id/prices", RequirePermission(perms, permission.SuppliersView), supplierHandler.PricesBySupplier)
	suppliers.Post("/", RequirePermission(perms, permission.SuppliersCreate), supplierHandler.Create)
	suppliers.Post("/prices", RequirePermission(perms, permission.SuppliersEdit), supplierHandler.SetPrice)
	suppliers.Put("/:id", RequirePermission(perms, permission.SuppliersEdit), supplierHandler.Update)
	suppliers.Delete("/:id", RequirePermission(perms, permission.SuppliersDelete), supplierHandler.Delete)
	protected.Get("/products/:id/supplier-prices", RequirePermission(perms, permission.SuppliersView), supplierHandler.PricesByProduct)

	// Sistema: tablero, auditoría, respaldo
	systemHandler := NewSystemHandler(deps.SystemUC)
	protected.Get("/dashboard", RequirePermission(perms, permission.ReportsView), systemHandler.Dashboard)
	protected.Get("/audit", RequireRole(entity.RoleAdmin), systemHandler.AuditLog)
	protected.Get("/backup", RequireRole(entity.RoleAdmin), systemHandler.Backup)
}
