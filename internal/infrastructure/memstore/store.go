// Package memstore implementa los puertos de repositorio sobre mapas en
// memoria. Se usa en tests de casos de uso: conserva la semántica condicional
// de los repos de Postgres (CAS de stock, transiciones de estado de una sola
// vez) y el TxRunner descarta todo lo hecho si el callback falla.
package memstore

import (
	"sync"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
)

// Store guarda todo el estado bajo un único mutex.
type Store struct {
	mu sync.Mutex

	users          map[string]*entity.User
	categories     map[string]*entity.Category
	products       map[string]*entity.Product
	customers      map[string]*entity.Customer
	warehouses     map[string]*entity.Warehouse
	suppliers      map[string]*entity.Supplier
	supplierPrices map[string]*entity.SupplierPrice // clave producto|proveedor
	stock          map[string]*entity.StockEntry    // clave producto|depósito
	sales          map[string]*entity.Sale
	quotes         map[string]*entity.Quote
	purchases      map[string]*entity.Purchase
	audit          []*entity.AuditEntry
}

// New crea un Store vacío.
func New() *Store {
	return &Store{
		users:          make(map[string]*entity.User),
		categories:     make(map[string]*entity.Category),
		products:       make(map[string]*entity.Product),
		customers:      make(map[string]*entity.Customer),
		warehouses:     make(map[string]*entity.Warehouse),
		suppliers:      make(map[string]*entity.Supplier),
		supplierPrices: make(map[string]*entity.SupplierPrice),
		stock:          make(map[string]*entity.StockEntry),
		sales:          make(map[string]*entity.Sale),
		quotes:         make(map[string]*entity.Quote),
		purchases:      make(map[string]*entity.Purchase),
	}
}

func pairKey(a, b string) string { return a + "|" + b }

// snapshot copia el estado completo para poder restaurarlo si una
// transacción falla.
type snapshot struct {
	users          map[string]*entity.User
	categories     map[string]*entity.Category
	products       map[string]*entity.Product
	customers      map[string]*entity.Customer
	warehouses     map[string]*entity.Warehouse
	suppliers      map[string]*entity.Supplier
	supplierPrices map[string]*entity.SupplierPrice
	stock          map[string]*entity.StockEntry
	sales          map[string]*entity.Sale
	quotes         map[string]*entity.Quote
	purchases      map[string]*entity.Purchase
	audit          []*entity.AuditEntry
}

func (s *Store) snapshot() *snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &snapshot{
		users:          make(map[string]*entity.User, len(s.users)),
		categories:     make(map[string]*entity.Category, len(s.categories)),
		products:       make(map[string]*entity.Product, len(s.products)),
		customers:      make(map[string]*entity.Customer, len(s.customers)),
		warehouses:     make(map[string]*entity.Warehouse, len(s.warehouses)),
		suppliers:      make(map[string]*entity.Supplier, len(s.suppliers)),
		supplierPrices: make(map[string]*entity.SupplierPrice, len(s.supplierPrices)),
		stock:          make(map[string]*entity.StockEntry, len(s.stock)),
		sales:          make(map[string]*entity.Sale, len(s.sales)),
		quotes:         make(map[string]*entity.Quote, len(s.quotes)),
		purchases:      make(map[string]*entity.Purchase, len(s.purchases)),
		audit:          append([]*entity.AuditEntry(nil), s.audit...),
	}
	for k, v := range s.users {
		snap.users[k] = cloneUser(v)
	}
	for k, v := range s.categories {
		snap.categories[k] = cloneCategory(v)
	}
	for k, v := range s.products {
		snap.products[k] = cloneProduct(v)
	}
	for k, v := range s.customers {
		snap.customers[k] = cloneCustomer(v)
	}
	for k, v := range s.warehouses {
		snap.warehouses[k] = cloneWarehouse(v)
	}
	for k, v := range s.suppliers {
		snap.suppliers[k] = cloneSupplier(v)
	}
	for k, v := range s.supplierPrices {
		snap.supplierPrices[k] = cloneSupplierPrice(v)
	}
	for k, v := range s.stock {
		snap.stock[k] = cloneStockEntry(v)
	}
	for k, v := range s.sales {
		snap.sales[k] = cloneSale(v)
	}
	for k, v := range s.quotes {
		snap.quotes[k] = cloneQuote(v)
	}
	for k, v := range s.purchases {
		snap.purchases[k] = clonePurchase(v)
	}
	return snap
}

func (s *Store) restore(snap *snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = snap.users
	s.categories = snap.categories
	s.products = snap.products
	s.customers = snap.customers
	s.warehouses = snap.warehouses
	s.suppliers = snap.suppliers
	s.supplierPrices = snap.supplierPrices
	s.stock = snap.stock
	s.sales = snap.sales
	s.quotes = snap.quotes
	s.purchases = snap.purchases
	s.audit = snap.audit
}

// Clones: las lecturas y escrituras copian para que los tests no muten el
// estado interno por referencia compartida.

func cloneUser(u *entity.User) *entity.User {
	cp := *u
	if u.LastLogin != nil {
		t := *u.LastLogin
		cp.LastLogin = &t
	}
	return &cp
}

func cloneCategory(c *entity.Category) *entity.Category {
	cp := *c
	return &cp
}

func cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	return &cp
}

func cloneCustomer(c *entity.Customer) *entity.Customer {
	cp := *c
	return &cp
}

func cloneWarehouse(w *entity.Warehouse) *entity.Warehouse {
	cp := *w
	return &cp
}

func cloneSupplier(s *entity.Supplier) *entity.Supplier {
	cp := *s
	return &cp
}

func cloneSupplierPrice(p *entity.SupplierPrice) *entity.SupplierPrice {
	cp := *p
	return &cp
}

func cloneStockEntry(e *entity.StockEntry) *entity.StockEntry {
	cp := *e
	return &cp
}

func cloneItems(items []entity.LineItem) []entity.LineItem {
	return append([]entity.LineItem(nil), items...)
}

func cloneSale(s *entity.Sale) *entity.Sale {
	cp := *s
	cp.Items = cloneItems(s.Items)
	return &cp
}

func cloneQuote(q *entity.Quote) *entity.Quote {
	cp := *q
	cp.Items = cloneItems(q.Items)
	return &cp
}

func clonePurchase(p *entity.Purchase) *entity.Purchase {
	cp := *p
	cp.Items = cloneItems(p.Items)
	if p.ReceivedAt != nil {
		t := *p.ReceivedAt
		cp.ReceivedAt = &t
	}
	return &cp
}
