package memstore

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

// CustomerRepository implementación en memoria del puerto de clientes.
type CustomerRepository struct {
	s *Store
}

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(s *Store) *CustomerRepository {
	return &CustomerRepository{s: s}
}

func (r *CustomerRepository) Create(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.customers[customer.ID] = cloneCustomer(customer)
	return nil
}

func (r *CustomerRepository) GetByID(id string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	return cloneCustomer(c), nil
}

func (r *CustomerRepository) GetByEmail(email string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if c.Email != "" && c.Email == email {
			return cloneCustomer(c), nil
		}
	}
	return nil, nil
}

func (r *CustomerRepository) List() ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		out = append(out, cloneCustomer(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CustomerRepository) Update(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[customer.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.customers[customer.ID] = cloneCustomer(customer)
	return nil
}

func (r *CustomerRepository) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.customers, id)
	return nil
}

func (r *CustomerRepository) AdjustBalance(id string, delta decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Balance = c.Balance.Add(delta)
	return nil
}
