package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rubengianelli8/Sistema-gestion/internal/application/audit"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/dto"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

// CustomerUseCase CRUD de clientes más su historial de compras.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
	recorder     *audit.Recorder
}

// NewCustomerUseCase construye el caso de uso de clientes.
func NewCustomerUseCase(customerRepo repository.CustomerRepository, saleRepo repository.SaleRepository, recorder *audit.Recorder) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, saleRepo: saleRepo, recorder: recorder}
}

// Create da de alta un cliente. El email, si viene, debe ser único.
func (uc *CustomerUseCase) Create(actor entity.Actor, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Email != "" {
		existing, err := uc.customerRepo.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:          uuid.New().String(),
		Name:        in.Name,
		TaxID:       in.TaxID,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		CreditLimit: in.CreditLimit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, "crear", "clientes", "cliente "+customer.Name)
	resp := dto.ToCustomerResponse(customer)
	return &resp, nil
}

// Get obtiene un cliente por ID.
func (uc *CustomerUseCase) Get(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToCustomerResponse(customer)
	return &resp, nil
}

// List devuelve todos los clientes.
func (uc *CustomerUseCase) List() ([]dto.CustomerResponse, error) {
	list, err := uc.customerRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ToCustomerResponse(c))
	}
	return out, nil
}

// Update edita los datos de un cliente. El saldo no se toca por acá.
func (uc *CustomerUseCase) Update(actor entity.Actor, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != nil && *in.Email != "" && *in.Email != customer.Email {
		existing, err := uc.customerRepo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.TaxID != nil {
		customer.TaxID = *in.TaxID
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.CreditLimit != nil {
		customer.CreditLimit = *in.CreditLimit
	}
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, "actualizar", "clientes", "cliente "+customer.Name)
	resp := dto.ToCustomerResponse(customer)
	return &resp, nil
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(actor entity.Actor, id string) error {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	if err := uc.customerRepo.Delete(id); err != nil {
		return err
	}
	uc.recorder.Record(actor, "eliminar", "clientes", "cliente "+customer.Name)
	return nil
}

// History devuelve las ventas de un cliente, más recientes primero, junto con
// la cantidad y el total gastado sin contar las ventas anuladas.
func (uc *CustomerUseCase) History(id string) (*dto.CustomerHistoryResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	sales, err := uc.saleRepo.ListByCustomer(id)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, s := range sales {
		if s.Status != entity.SaleStatusVoided {
			total = total.Add(s.Total)
		}
	}
	return &dto.CustomerHistoryResponse{
		Sales:      dto.ToSaleResponses(sales),
		Count:      len(sales),
		TotalSpent: total,
	}, nil
}
