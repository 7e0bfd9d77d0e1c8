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

// CategoryUseCase CRUD de categorías.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	recorder     *audit.Recorder
}

// NewCategoryUseCase construye el caso de uso de categorías.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, recorder *audit.Recorder) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, productRepo: productRepo, recorder: recorder}
}

// Create da de alta una categoría. El nombre es único.
func (uc *CategoryUseCase) Create(actor entity.Actor, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.categoryRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, "crear", "categorias", "categoría "+category.Name)
	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ToCategoryResponse(c))
	}
	return out, nil
}

// Update edita una categoría.
func (uc *CategoryUseCase) Update(actor entity.Actor, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		category.Name = in.Name
	}
	category.Description = in.Description
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, "actualizar", "categorias", "categoría "+category.Name)
	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

// Delete elimina una categoría solo si no tiene productos asociados.
func (uc *CategoryUseCase) Delete(actor entity.Actor, id string) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	n, err := uc.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrInUse
	}
	if err := uc.categoryRepo.Delete(id); err != nil {
		return err
	}
	uc.recorder.Record(actor, "eliminar", "categorias", "categoría "+category.Name)
	return nil
}
