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

// SupplierUseCase CRUD de proveedores y sus precios de catálogo.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
	priceRepo    repository.SupplierPriceRepository
	productRepo  repository.ProductRepository
	recorder     *audit.Recorder
}

// NewSupplierUseCase construye el caso de uso de proveedores.
func NewSupplierUseCase(
	supplierRepo repository.SupplierRepository,
	priceRepo repository.SupplierPriceRepository,
	productRepo repository.ProductRepository,
	recorder *audit.Recorder,
) *SupplierUseCase {
	return &SupplierUseCase{
		supplierRepo: supplierRepo,
		priceRepo:    priceRepo,
		productRepo:  productRepo,
		recorder:     recorder,
	}
}

// Create da de alta un proveedor.
func (uc *SupplierUseCase) Create(actor entity.Actor, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Contact:   in.Contact,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		TaxID:     in.TaxID,
		Active:    active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, "crear", "proveedores", "proveedor "+supplier.Name)
	resp := dto.ToSupplierResponse(supplier)
	return &resp, nil
}

// Get obtiene un proveedor por ID.
func (uc *SupplierUseCase) Get(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToSupplierResponse(supplier)
	return &resp, nil
}

// List devuelve todos los proveedores.
func (uc *SupplierUseCase) List() ([]dto.SupplierResponse, error) {
	list, err := uc.supplierRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ToSupplierResponse(s))
	}
	return out, nil
}

// Update edita un proveedor.
func (uc *SupplierUseCase) Update(actor entity.Actor, id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		supplier.Name = in.Name
	}
	supplier.Contact = in.Contact
	supplier.Email = in.Email
	supplier.Phone = in.Phone
	supplier.Address = in.Address
	supplier.TaxID = in.TaxID
	if in.Active != nil {
		supplier.Active = *in.Active
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, "actualizar", "proveedores", "proveedor "+supplier.Name)
	resp := dto.ToSupplierResponse(supplier)
	return &resp, nil
}

// Delete elimina un proveedor con sus precios de catálogo.
func (uc *SupplierUseCase) Delete(actor entity.Actor, id string) error {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	if err := uc.supplierRepo.Delete(id); err != nil {
		return err
	}
	uc.recorder.Record(actor, "eliminar", "proveedores", "proveedor "+supplier.Name)
	return nil
}

// SetPrice registra o pisa el precio de un producto en el catálogo del proveedor.
func (uc *SupplierUseCase) SetPrice(actor entity.Actor, in dto.SupplierPriceRequest) (*dto.SupplierPriceResponse, error) {
	if in.ProductID == "" || in.SupplierID == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	price := &entity.SupplierPrice{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		ProductName:  product.Name,
		SupplierID:   in.SupplierID,
		SupplierName: supplier.Name,
		Price:        in.Price,
		SupplierCode: in.SupplierCode,
		UpdatedAt:    time.Now(),
	}
	if err := uc.priceRepo.Upsert(price); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, "actualizar", "proveedores", "precio de "+product.Name+" en "+supplier.Name)
	resp := dto.ToSupplierPriceResponse(price)
	return &resp, nil
}

// PricesByProduct compara el precio de un producto entre proveedores, del más barato al más caro.
func (uc *SupplierUseCase) PricesByProduct(productID string) ([]dto.SupplierPriceResponse, error) {
	list, err := uc.priceRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierPriceResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToSupplierPriceResponse(p))
	}
	return out, nil
}

// PricesBySupplier devuelve el catálogo de precios de un proveedor.
func (uc *SupplierUseCase) PricesBySupplier(supplierID string) ([]dto.SupplierPriceResponse, error) {
	list, err := uc.priceRepo.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierPriceResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToSupplierPriceResponse(p))
	}
	return out, nil
}
