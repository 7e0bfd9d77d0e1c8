package memstore

import (
	"sort"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

// CategoryRepository implementación en memoria del puerto de categorías.
type CategoryRepository struct {
	s *Store
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(s *Store) *CategoryRepository {
	return &CategoryRepository{s: s}
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.Name == category.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.categories[category.ID] = cloneCategory(category)
	return nil
}

func (r *CategoryRepository) GetByID(id string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return cloneCategory(c), nil
}

func (r *CategoryRepository) GetByName(name string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.Name == name {
			return cloneCategory(c), nil
		}
	}
	return nil, nil
}

func (r *CategoryRepository) List() ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, cloneCategory(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CategoryRepository) Update(category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[category.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.categories[category.ID] = cloneCategory(category)
	return nil
}

func (r *CategoryRepository) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.categories, id)
	return nil
}

// WarehouseRepository implementación en memoria del puerto de depósitos.
type WarehouseRepository struct {
	s *Store
}

var _ repository.WarehouseRepository = (*WarehouseRepository)(nil)

func NewWarehouseRepository(s *Store) *WarehouseRepository {
	return &WarehouseRepository{s: s}
}

func (r *WarehouseRepository) Create(warehouse *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.warehouses[warehouse.ID] = cloneWarehouse(warehouse)
	return nil
}

func (r *WarehouseRepository) GetByID(id string) (*entity.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	return cloneWarehouse(w), nil
}

func (r *WarehouseRepository) List() ([]*entity.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Warehouse, 0, len(r.s.warehouses))
	for _, w := range r.s.warehouses {
		out = append(out, cloneWarehouse(w))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *WarehouseRepository) Update(warehouse *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.warehouses[warehouse.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.warehouses[warehouse.ID] = cloneWarehouse(warehouse)
	return nil
}

func (r *WarehouseRepository) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.warehouses, id)
	return nil
}

// SupplierRepository implementación en memoria del puerto de proveedores.
type SupplierRepository struct {
	s *Store
}

var _ repository.SupplierRepository = (*SupplierRepository)(nil)

func NewSupplierRepository(s *Store) *SupplierRepository {
	return &SupplierRepository{s: s}
}

func (r *SupplierRepository) Create(supplier *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.suppliers[supplier.ID] = cloneSupplier(supplier)
	return nil
}

func (r *SupplierRepository) GetByID(id string) (*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sp, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	return cloneSupplier(sp), nil
}

func (r *SupplierRepository) List() ([]*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Supplier, 0, len(r.s.suppliers))
	for _, sp := range r.s.suppliers {
		out = append(out, cloneSupplier(sp))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *SupplierRepository) Update(supplier *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[supplier.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.suppliers[supplier.ID] = cloneSupplier(supplier)
	return nil
}

// Delete borra el proveedor y sus precios de catálogo, igual que la
// implementación de Postgres.
func (r *SupplierRepository) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.suppliers, id)
	for k, p := range r.s.supplierPrices {
		if p.SupplierID == id {
			delete(r.s.supplierPrices, k)
		}
	}
	return nil
}

// SupplierPriceRepository implementación en memoria de precios por proveedor.
type SupplierPriceRepository struct {
	s *Store
}

var _ repository.SupplierPriceRepository = (*SupplierPriceRepository)(nil)

func NewSupplierPriceRepository(s *Store) *SupplierPriceRepository {
	return &SupplierPriceRepository{s: s}
}

func (r *SupplierPriceRepository) Upsert(price *entity.SupplierPrice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.supplierPrices[pairKey(price.ProductID, price.SupplierID)] = cloneSupplierPrice(price)
	return nil
}

func (r *SupplierPriceRepository) ListByProduct(productID string) ([]*entity.SupplierPrice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.SupplierPrice, 0)
	for _, p := range r.s.supplierPrices {
		if p.ProductID == productID {
			out = append(out, cloneSupplierPrice(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SupplierName < out[j].SupplierName })
	return out, nil
}

func (r *SupplierPriceRepository) ListBySupplier(supplierID string) ([]*entity.SupplierPrice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.SupplierPrice, 0)
	for _, p := range r.s.supplierPrices {
		if p.SupplierID == supplierID {
			out = append(out, cloneSupplierPrice(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	return out, nil
}
