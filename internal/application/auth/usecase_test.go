package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubengianelli8/Sistema-gestion/internal/application/audit"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/auth"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/dto"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/permission"
	"github.com/rubengianelli8/Sistema-gestion/internal/infrastructure/memstore"
	"github.com/rubengianelli8/Sistema-gestion/pkg/logger"
)

var adminActor = entity.Actor{ID: "a-1", Name: "Admin Test", Role: entity.RoleAdmin}

func newAuthUC(t *testing.T) (*auth.AuthUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	recorder := audit.NewRecorder(memstore.NewAuditRepository(store), nil, log, nil)
	t.Cleanup(recorder.Close)

	uc := auth.NewAuthUseCase(memstore.NewUserRepository(store), permission.Default(), recorder, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "sistema-gestion-test",
	})
	return uc, store
}

func TestRegisterUser_HasheaYDefaulteaRol(t *testing.T) {
	uc, store := newAuthUC(t)

	resp, err := uc.RegisterUser(adminActor, dto.RegisterRequest{
		Email:    "vendedor@gestion.local",
		Password: "secreto123",
		Name:     "Juana Pérez",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleVendedor, resp.Role, "sin rol explícito debe quedar vendedor")
	assert.True(t, resp.Active)

	stored, err := memstore.NewUserRepository(store).FindByEmail("vendedor@gestion.local")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "la contraseña nunca se guarda en claro")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.RegisterUser(adminActor, dto.RegisterRequest{Email: "dup@gestion.local", Password: "x12345"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(adminActor, dto.RegisterRequest{Email: "dup@gestion.local", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_RolInvalido(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.RegisterUser(adminActor, dto.RegisterRequest{
		Email:    "x@gestion.local",
		Password: "x12345",
		Role:     "gerente",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_DevuelveTokenYPermisos(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.RegisterUser(adminActor, dto.RegisterRequest{
		Email:    "cajero@gestion.local",
		Password: "secreto123",
		Role:     entity.RoleVendedor,
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "cajero@gestion.local", Password: "secreto123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleVendedor, resp.User.Role)
	assert.Contains(t, resp.Permissions, permission.SalesCreate)
	assert.NotContains(t, resp.Permissions, permission.UsersCreate)
	assert.NotNil(t, resp.User.LastLogin, "el login debe sellar el último acceso")
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.RegisterUser(adminActor, dto.RegisterRequest{Email: "u@gestion.local", Password: "correcta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "u@gestion.local", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@gestion.local", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"email desconocido y password incorrecta deben responder lo mismo")
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, store := newAuthUC(t)

	resp, err := uc.RegisterUser(adminActor, dto.RegisterRequest{Email: "baja@gestion.local", Password: "secreto123"})
	require.NoError(t, err)
	require.NoError(t, memstore.NewUserRepository(store).Deactivate(resp.ID))

	_, err = uc.Login(dto.LoginRequest{Email: "baja@gestion.local", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEnsureDefaultAdmin_SiembraSoloConTablaVacia(t *testing.T) {
	uc, store := newAuthUC(t)

	require.NoError(t, uc.EnsureDefaultAdmin("admin@gestion.local", "admin123"))

	userRepo := memstore.NewUserRepository(store)
	admin, err := userRepo.FindByEmail("admin@gestion.local")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)

	// Segundo arranque: ya hay usuarios, no debe sembrar de nuevo.
	require.NoError(t, uc.EnsureDefaultAdmin("otro@gestion.local", "otra"))
	other, err := userRepo.FindByEmail("otro@gestion.local")
	require.NoError(t, err)
	assert.Nil(t, other)

	n, err := userRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// El admin sembrado puede loguearse.
	login, err := uc.Login(dto.LoginRequest{Email: "admin@gestion.local", Password: "admin123"})
	require.NoError(t, err)
	assert.Contains(t, login.Permissions, permission.UsersCreate)
}
