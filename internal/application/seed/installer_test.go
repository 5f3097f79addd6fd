package seed_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hwshop/storefront-api/internal/application/cart"
	"github.com/hwshop/storefront-api/internal/application/seed"
	"github.com/hwshop/storefront-api/internal/domain/entity"
	infracatalog "github.com/hwshop/storefront-api/internal/infrastructure/catalog"
	"github.com/hwshop/storefront-api/internal/infrastructure/localstore"
	"github.com/hwshop/storefront-api/pkg/logger"
)

type fixture struct {
	installer *seed.Installer
	users     *localstore.UserRepo
	cart      *cart.Store
	store     *localstore.Store
}

func build(t *testing.T) *fixture {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "hwshop.json"), logger.Nop())
	require.NoError(t, err)

	users := localstore.NewUserRepository(store)
	cartStore := cart.NewStore(localstore.NewCartRepository(store))
	installer := seed.NewInstaller(users, infracatalog.NewRepository(), cartStore, store, logger.Nop())
	return &fixture{installer: installer, users: users, cart: cartStore, store: store}
}

func TestInstall_CreaUsuariosSemilla(t *testing.T) {
	f := build(t)
	require.NoError(t, f.installer.Install())

	count, err := f.users.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	admin, err := f.users.FindByEmail("admin@hwshop.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin", admin.Role)

	// El password semilla se instala hasheado, nunca en claro.
	assert.NotEqual(t, "admin123", admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))
}

func TestInstall_CarritoDemo(t *testing.T) {
	f := build(t)
	require.NoError(t, f.installer.Install())

	items := f.cart.Get()
	require.Len(t, items, 3, "el carrito demo trae 3 productos")
	assert.Equal(t, 4, f.cart.Count(), "1 + 2 + 1 unidades")
	assert.True(t, f.store.Has(localstore.KeyCartInitialized))
}

// Install es seguro de correr en cada arranque: no duplica usuarios ni
// vuelve a sembrar un carrito que el usuario ya vació.
func TestInstall_Idempotente(t *testing.T) {
	f := build(t)
	require.NoError(t, f.installer.Install())

	require.NoError(t, f.cart.Clear())
	require.NoError(t, f.installer.Install())

	count, err := f.users.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, count, "los usuarios no se duplican")
	assert.Empty(t, f.cart.Get(), "el flag impide re-sembrar el carrito vaciado")
}

// Si el directorio ya tiene usuarios (aunque no sean los semilla), no se toca.
func TestInstall_NoPisaDirectorioExistente(t *testing.T) {
	f := build(t)
	require.NoError(t, f.users.Create(&entity.User{
		ID:    "propio",
		Email: "propio@hwshop.com",
		Role:  entity.RoleCustomer,
	}))

	require.NoError(t, f.installer.Install())

	count, err := f.users.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count, "con directorio no vacío la semilla de usuarios se salta")
}
