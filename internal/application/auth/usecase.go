package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rubengianelli8/Sistema-gestion/internal/application/audit"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/dto"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/permission"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
	"github.com/rubengianelli8/Sistema-gestion/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	perms    *permission.Table
	recorder *audit.Recorder
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, perms *permission.Table, recorder *audit.Recorder, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, perms: perms, recorder: recorder, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(actor entity.Actor, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleVendedor
	}
	if !validRole(role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, "crear", "usuarios", "usuario "+user.Email)
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// Login verifica email/password, sella el último acceso y genera el JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	if err := uc.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.recorder.Record(entity.Actor{ID: user.ID, Name: user.Name, Role: user.Role}, "login", "auth", "")
	return &dto.LoginResponse{
		Token:       token,
		User:        dto.ToUserResponse(user),
		Permissions: uc.perms.For(user.Role),
	}, nil
}

// Me devuelve el perfil del usuario autenticado con los permisos de su rol.
func (uc *AuthUseCase) Me(userID string) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.LoginResponse{
		User:        dto.ToUserResponse(user),
		Permissions: uc.perms.For(user.Role),
	}, nil
}

// EnsureDefaultAdmin siembra el admin inicial si la tabla de usuarios está
// vacía (primer arranque).
func (uc *AuthUseCase) EnsureDefaultAdmin(email, password string) error {
	n, err := uc.userRepo.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrador",
		Role:         entity.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return uc.userRepo.Create(admin)
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleVendedor, entity.RoleAlmacenero, entity.RoleContador:
		return true
	}
	return false
}
