package repository

import "github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
}

// SupplierPriceRepository define el puerto para precios por proveedor.
// Una fila por par (producto, proveedor), actualizada por upsert.
type SupplierPriceRepository interface {
	Upsert(price *entity.SupplierPrice) error
	ListByProduct(productID string) ([]*entity.SupplierPrice, error)
	ListBySupplier(supplierID string) ([]*entity.SupplierPrice, error)
}
