package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rubengianelli8/Sistema-gestion/internal/application/audit"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/dto"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo admin).
type UserUseCase struct {
	userRepo repository.UserRepository
	recorder *audit.Recorder
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository, recorder *audit.Recorder) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, recorder: recorder}
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.ToUserResponse(u))
	}
	return out, nil
}

// GetByID devuelve un usuario por su id.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// Update edita un usuario: datos, rol, contraseña (re-hasheada) o estado.
func (uc *UserUseCase) Update(actor entity.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != nil && *in.Email != "" && *in.Email != user.Email {
		existing, err := uc.userRepo.FindByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.Name != nil && *in.Name != "" {
		user.Name = *in.Name
	}
	if in.Role != nil && *in.Role != "" {
		switch *in.Role {
		case entity.RoleAdmin, entity.RoleVendedor, entity.RoleAlmacenero, entity.RoleContador:
			user.Role = *in.Role
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Active != nil {
		// Un admin no puede desactivarse a sí mismo.
		if !*in.Active && id == actor.ID {
			return nil, domain.ErrInvalidInput
		}
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, "actualizar", "usuarios", "usuario "+user.Email)
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// Deactivate baja lógica de un usuario. Un admin no puede borrarse a sí mismo.
func (uc *UserUseCase) Deactivate(actor entity.Actor, id string) error {
	if id == actor.ID {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.userRepo.Deactivate(id); err != nil {
		return err
	}
	uc.recorder.Record(actor, "eliminar", "usuarios", "usuario "+user.Email)
	return nil
}
