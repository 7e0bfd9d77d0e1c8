package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/rubengianelli8/Sistema-gestion/internal/application/audit"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/dto"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

// ProductUseCase CRUD de productos del catálogo.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	stockRepo    repository.StockRepository
	recorder     *audit.Recorder
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	stockRepo repository.StockRepository,
	recorder *audit.Recorder,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		stockRepo:    stockRepo,
		recorder:     recorder,
	}
}

// Create da de alta un producto. El código de barras, si viene, debe ser único.
func (uc *ProductUseCase) Create(actor entity.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Barcode != "" {
		existing, err := uc.productRepo.GetByBarcode(in.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Description,
		Barcode:        in.Barcode,
		CategoryID:     in.CategoryID,
		RetailPrice:    in.RetailPrice,
		WholesalePrice: in.WholesalePrice,
		Stock:          in.Stock,
		MinStock:       in.MinStock,
		ImageURL:       in.ImageURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, "crear", "productos", "producto "+product.Name)
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// Get obtiene un producto por ID.
func (uc *ProductUseCase) Get(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// GetByBarcode obtiene un producto por código de barras (lectoras del mostrador).
func (uc *ProductUseCase) GetByBarcode(barcode string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToProductResponse(p))
	}
	return out, nil
}

// Search busca por nombre parcial o código de barras (autocompletado).
func (uc *ProductUseCase) Search(query string, limit int) ([]dto.ProductResponse, error) {
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	list, err := uc.productRepo.Search(query, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToProductResponse(p))
	}
	return out, nil
}

// Update edita un producto. El stock no se toca por acá.
func (uc *ProductUseCase) Update(actor entity.Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Barcode != nil && *in.Barcode != "" && *in.Barcode != product.Barcode {
		existing, err := uc.productRepo.GetByBarcode(*in.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.RetailPrice != nil {
		product.RetailPrice = *in.RetailPrice
	}
	if in.WholesalePrice != nil {
		product.WholesalePrice = *in.WholesalePrice
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, "actualizar", "productos", "producto "+product.Name)
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(actor entity.Actor, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.productRepo.Delete(id); err != nil {
		return err
	}
	uc.recorder.Record(actor, "eliminar", "productos", "producto "+product.Name)
	return nil
}

// StockByWarehouse devuelve el detalle por depósito de un producto.
func (uc *ProductUseCase) StockByWarehouse(id string) ([]dto.WarehouseStockResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.stockRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseStockResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ToWarehouseStockResponse(e))
	}
	return out, nil
}
