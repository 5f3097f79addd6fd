package auth_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hwshop/storefront-api/internal/application/auth"
	"github.com/hwshop/storefront-api/internal/application/dto"
	"github.com/hwshop/storefront-api/internal/domain"
	"github.com/hwshop/storefront-api/internal/domain/entity"
	"github.com/hwshop/storefront-api/internal/infrastructure/localstore"
	pkgjwt "github.com/hwshop/storefront-api/pkg/jwt"
	"github.com/hwshop/storefront-api/pkg/logger"
)

const testSecret = "test-secret-key-for-unit-tests"

// buildAuth arma el caso de uso sobre un store real en un directorio temporal.
func buildAuth(t *testing.T) (*auth.AuthUseCase, *localstore.SessionRepo) {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "hwshop.json"), logger.Nop())
	require.NoError(t, err)

	users := localstore.NewUserRepository(store)
	sessions := localstore.NewSessionRepository(store)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(&entity.User{
		ID:           "1",
		Email:        "admin@hwshop.com",
		PasswordHash: string(hash),
		Name:         "Admin User",
		Role:         entity.RoleAdmin,
	}))

	uc := auth.NewAuthUseCase(users, sessions, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "hwshop-test",
	})
	return uc, sessions
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	uc, sessions := buildAuth(t)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@hwshop.com", Password: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, "admin@hwshop.com", out.User.Email)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	require.NotEmpty(t, out.Token)

	// El token lleva los claims del usuario.
	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", userID)
	assert.Equal(t, entity.RoleAdmin, role)

	// La sesión queda espejada en el store durable.
	current, err := sessions.Current()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "1", current.ID)
}

// Email inexistente y password malo devuelven el mismo error, sin distinguir.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := buildAuth(t)

	_, err := uc.Login(dto.LoginRequest{Email: "admin@hwshop.com", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@hwshop.com", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_SiempreRolCustomer(t *testing.T) {
	uc, sessions := buildAuth(t)

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "nuevo@gmail.com",
		Password: "secreto123",
		Name:     "Nuevo Usuario",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleCustomer, out.User.Role)
	assert.NotEmpty(t, out.User.ID, "el id se genera en el registro")
	assert.NotEmpty(t, out.Token)

	// Registro abre sesión de inmediato.
	current, err := sessions.Current()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "nuevo@gmail.com", current.Email)

	// Y puede loguearse con sus credenciales.
	_, err = uc.Login(dto.LoginRequest{Email: "nuevo@gmail.com", Password: "secreto123"})
	assert.NoError(t, err)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := buildAuth(t)

	_, err := uc.Register(dto.RegisterRequest{
		Email:    "admin@hwshop.com",
		Password: "loquesea1",
		Name:     "Impostor",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// El password nunca se persiste en claro.
func TestRegister_PasswordHasheado(t *testing.T) {
	uc, _ := buildAuth(t)

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "hash@gmail.com",
		Password: "secreto123",
		Name:     "Hash User",
	})
	require.NoError(t, err)

	got, err := uc.CurrentUser(out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash@gmail.com", got.Email)
	// El DTO de salida no expone el hash; verificamos vía login que el
	// password plano no sirve como hash ni viceversa.
	_, err = uc.Login(dto.LoginRequest{Email: "hash@gmail.com", Password: "secreto123"})
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout / CurrentUser / ListUsers
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_LimpiaSesion(t *testing.T) {
	uc, sessions := buildAuth(t)
	_, err := uc.Login(dto.LoginRequest{Email: "admin@hwshop.com", Password: "admin123"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout())
	current, err := sessions.Current()
	require.NoError(t, err)
	assert.Nil(t, current)

	require.NoError(t, uc.Logout(), "logout sin sesión es idempotente")
}

func TestCurrentUser_Inexistente(t *testing.T) {
	uc, _ := buildAuth(t)
	_, err := uc.CurrentUser("fantasma")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListUsers_DirectorioCompleto(t *testing.T) {
	uc, _ := buildAuth(t)
	_, err := uc.Register(dto.RegisterRequest{
		Email:    "otro@gmail.com",
		Password: "secreto123",
		Name:     "Otro",
	})
	require.NoError(t, err)

	users, err := uc.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
