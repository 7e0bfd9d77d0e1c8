package usecase

import (
	"time"

	"github.com/rubengianelli8/Sistema-gestion/internal/application/dto"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

// SystemUseCase tablero, auditoría y respaldo.
type SystemUseCase struct {
	statsRepo     repository.StatsRepository
	auditRepo     repository.AuditRepository
	userRepo      repository.UserRepository
	categoryRepo  repository.CategoryRepository
	productRepo   repository.ProductRepository
	customerRepo  repository.CustomerRepository
	warehouseRepo repository.WarehouseRepository
	supplierRepo  repository.SupplierRepository
	saleRepo      repository.SaleRepository
	quoteRepo     repository.QuoteRepository
	purchaseRepo  repository.PurchaseRepository
}

// NewSystemUseCase construye el caso de uso de sistema.
func NewSystemUseCase(
	statsRepo repository.StatsRepository,
	auditRepo repository.AuditRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	warehouseRepo repository.WarehouseRepository,
	supplierRepo repository.SupplierRepository,
	saleRepo repository.SaleRepository,
	quoteRepo repository.QuoteRepository,
	purchaseRepo repository.PurchaseRepository,
) *SystemUseCase {
	return &SystemUseCase{
		statsRepo:     statsRepo,
		auditRepo:     auditRepo,
		userRepo:      userRepo,
		categoryRepo:  categoryRepo,
		productRepo:   productRepo,
		customerRepo:  customerRepo,
		warehouseRepo: warehouseRepo,
		supplierRepo:  supplierRepo,
		saleRepo:      saleRepo,
		quoteRepo:     quoteRepo,
		purchaseRepo:  purchaseRepo,
	}
}

// Dashboard devuelve los contadores del tablero.
func (uc *SystemUseCase) Dashboard() (*dto.DashboardResponse, error) {
	s, err := uc.statsRepo.Summary()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Products:         s.Products,
		LowStockProducts: s.LowStockProducts,
		Customers:        s.Customers,
		SalesToday:       s.SalesToday,
		RevenueToday:     s.RevenueToday,
		PendingQuotes:    s.PendingQuotes,
		PendingPurchases: s.PendingPurchases,
	}, nil
}

// AuditLog devuelve las entradas de auditoría más recientes.
func (uc *SystemUseCase) AuditLog(limit int) ([]dto.AuditEntryResponse, error) {
	if limit <= 0 || limit > 1000 {
		limit = 200
	}
	list, err := uc.auditRepo.List(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.ToAuditEntryResponse(e))
	}
	return out, nil
}

// Backup arma un volcado JSON de todos los datos. Los usuarios van sin hash
// de contraseña. Las listas de documentos se limitan a las últimas filas
// para que el volcado no crezca sin tope.
func (uc *SystemUseCase) Backup() (*dto.BackupResponse, error) {
	const docLimit = 10000

	backup := &dto.BackupResponse{GeneratedAt: time.Now()}

	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		backup.Users = append(backup.Users, dto.ToUserResponse(u))
	}

	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		backup.Categories = append(backup.Categories, dto.ToCategoryResponse(c))
	}

	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		backup.Products = append(backup.Products, dto.ToProductResponse(p))
	}

	customers, err := uc.customerRepo.List()
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		backup.Customers = append(backup.Customers, dto.ToCustomerResponse(c))
	}

	warehouses, err := uc.warehouseRepo.List()
	if err != nil {
		return nil, err
	}
	for _, w := range warehouses {
		backup.Warehouses = append(backup.Warehouses, dto.ToWarehouseResponse(w))
	}

	suppliers, err := uc.supplierRepo.List()
	if err != nil {
		return nil, err
	}
	for _, s := range suppliers {
		backup.Suppliers = append(backup.Suppliers, dto.ToSupplierResponse(s))
	}

	sales, err := uc.saleRepo.List(docLimit)
	if err != nil {
		return nil, err
	}
	backup.Sales = dto.ToSaleResponses(sales)

	quotes, err := uc.quoteRepo.List(docLimit)
	if err != nil {
		return nil, err
	}
	backup.Quotes = dto.ToQuoteResponses(quotes)

	purchases, err := uc.purchaseRepo.List(docLimit)
	if err != nil {
		return nil, err
	}
	backup.Purchases = dto.ToPurchaseResponses(purchases)

	return backup, nil
}
