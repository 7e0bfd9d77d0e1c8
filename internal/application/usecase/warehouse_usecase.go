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

// WarehouseUseCase CRUD de depósitos.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
	recorder      *audit.Recorder
}

// NewWarehouseUseCase construye el caso de uso de depósitos.
func NewWarehouseUseCase(warehouseRepo repository.WarehouseRepository, recorder *audit.Recorder) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo, recorder: recorder}
}

// Create da de alta un depósito.
func (uc *WarehouseUseCase) Create(actor entity.Actor, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Manager:   in.Manager,
		Phone:     in.Phone,
		Active:    active,
		CreatedAt: time.Now(),
	}
	if err := uc.warehouseRepo.Create(warehouse); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, "crear", "depositos", "depósito "+warehouse.Name)
	resp := dto.ToWarehouseResponse(warehouse)
	return &resp, nil
}

// List devuelve todos los depósitos.
func (uc *WarehouseUseCase) List() ([]dto.WarehouseResponse, error) {
	list, err := uc.warehouseRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, dto.ToWarehouseResponse(w))
	}
	return out, nil
}

// GetByID devuelve un depósito por su id.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToWarehouseResponse(warehouse)
	return &resp, nil
}

// Update edita un depósito.
func (uc *WarehouseUseCase) Update(actor entity.Actor, id string, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		warehouse.Name = in.Name
	}
	warehouse.Address = in.Address
	warehouse.Manager = in.Manager
	warehouse.Phone = in.Phone
	if in.Active != nil {
		warehouse.Active = *in.Active
	}
	if err := uc.warehouseRepo.Update(warehouse); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, "actualizar", "depositos", "depósito "+warehouse.Name)
	resp := dto.ToWarehouseResponse(warehouse)
	return &resp, nil
}

// Delete elimina un depósito.
func (uc *WarehouseUseCase) Delete(actor entity.Actor, id string) error {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	if err := uc.warehouseRepo.Delete(id); err != nil {
		return err
	}
	uc.recorder.Record(actor, "eliminar", "depositos", "depósito "+warehouse.Name)
	return nil
}
