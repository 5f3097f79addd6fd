package localstore_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwshop/storefront-api/internal/domain/entity"
	"github.com/hwshop/storefront-api/internal/infrastructure/localstore"
	"github.com/hwshop/storefront-api/pkg/logger"
)

func openStore(t *testing.T) (*localstore.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hwshop.json")
	s, err := localstore.Open(path, logger.Nop())
	require.NoError(t, err)
	return s, path
}

// ──────────────────────────────────────────────────────────────────────────────
// Store
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_SetGetRoundTrip(t *testing.T) {
	s, path := openStore(t)

	require.NoError(t, s.Set("clave", map[string]int{"x": 7}))

	var out map[string]int
	require.True(t, s.Get("clave", &out))
	assert.Equal(t, 7, out["x"])

	// Y sobrevive a una reapertura.
	reopened, err := localstore.Open(path, logger.Nop())
	require.NoError(t, err)
	out = nil
	require.True(t, reopened.Get("clave", &out))
	assert.Equal(t, 7, out["x"])
}

func TestStore_ClaveAusente(t *testing.T) {
	s, _ := openStore(t)
	var out string
	assert.False(t, s.Get("no-existe", &out))
	assert.False(t, s.Has("no-existe"))
}

func TestStore_ArchivoCorruptoIniciaVacio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hwshop.json")
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o644))

	s, err := localstore.Open(path, logger.Nop())
	require.NoError(t, err, "un archivo corrupto no es un error fatal")

	var out string
	assert.False(t, s.Get("cualquiera", &out))
}

func TestStore_BlobCorruptoSeTrataComoAusente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hwshop.json")
	raw, _ := json.Marshal(map[string]json.RawMessage{
		"bueno": json.RawMessage(`{"x":1}`),
		"malo":  json.RawMessage(`"un string donde se espera objeto"`),
	})
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	s, err := localstore.Open(path, logger.Nop())
	require.NoError(t, err)

	var obj map[string]int
	assert.True(t, s.Get("bueno", &obj))
	assert.False(t, s.Get("malo", &obj), "blob que no parsea = data ausente")
	assert.True(t, s.Has("malo"), "la clave existe aunque su blob no parsee")
}

func TestStore_DeleteIdempotente(t *testing.T) {
	s, _ := openStore(t)
	require.NoError(t, s.Set("k", 1))
	require.NoError(t, s.Delete("k"))
	require.NoError(t, s.Delete("k"), "borrar clave ausente es no-op")
	assert.False(t, s.Has("k"))
}

func TestStore_KeysPorPrefijoOrdenadas(t *testing.T) {
	s, _ := openStore(t)
	require.NoError(t, s.Set("order_HW3", 3))
	require.NoError(t, s.Set("order_HW1", 1))
	require.NoError(t, s.Set("order_HW2", 2))
	require.NoError(t, s.Set("users", []string{}))

	keys := s.Keys("order_")
	assert.Equal(t, []string{"order_HW1", "order_HW2", "order_HW3"}, keys)
}

// ──────────────────────────────────────────────────────────────────────────────
// OrderRepo
// ──────────────────────────────────────────────────────────────────────────────

func testOrder(id string) *entity.Order {
	return &entity.Order{
		OrderID:       id,
		Items:         []entity.OrderItem{{ProductID: "1", Name: "Neon", Price: decimal.RequireFromString("89.99"), Quantity: 1}},
		Subtotal:      decimal.RequireFromString("89.99"),
		ShippingFee:   decimal.RequireFromString("15"),
		Tax:           decimal.RequireFromString("8.999"),
		Total:         decimal.RequireFromString("113.989"),
		PaymentMethod: "cod",
		Status:        entity.OrderConfirmed,
		CreatedAt:     time.Now(),
	}
}

func TestOrderRepo_SaveAsignaSchemaVersion(t *testing.T) {
	s, _ := openStore(t)
	repo := localstore.NewOrderRepository(s)

	require.NoError(t, repo.Save(testOrder("HW1")))

	got, err := repo.GetByID("HW1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.OrderSchemaVersion, got.SchemaVersion)
	assert.Equal(t, entity.OrderConfirmed, got.Status)
}

func TestOrderRepo_GetAusenteDevuelveNil(t *testing.T) {
	s, _ := openStore(t)
	repo := localstore.NewOrderRepository(s)

	got, err := repo.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, got, "orden ausente no es un error, es nil")
}

// Blobs legacy sin schema_version se normalizan a la versión actual al leer.
func TestOrderRepo_MigraBlobLegacy(t *testing.T) {
	s, _ := openStore(t)
	require.NoError(t, s.Set("order_HW9", map[string]any{
		"order_id": "HW9",
		"status":   "pending",
	}))

	repo := localstore.NewOrderRepository(s)
	got, err := repo.GetByID("HW9")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.OrderSchemaVersion, got.SchemaVersion)
	assert.Equal(t, entity.OrderPending, got.Status)
}

func TestOrderRepo_ListSaltaBlobsCorruptos(t *testing.T) {
	s, _ := openStore(t)
	repo := localstore.NewOrderRepository(s)
	require.NoError(t, repo.Save(testOrder("HW1")))
	require.NoError(t, repo.Save(testOrder("HW2")))
	require.NoError(t, s.Set("order_HWmalo", "esto no es una orden"))

	orders, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, orders, 2, "el blob corrupto se salta, no aborta el listado")
}

// ──────────────────────────────────────────────────────────────────────────────
// UserRepo + SessionRepo
// ──────────────────────────────────────────────────────────────────────────────

func testUser(id, email string) *entity.User {
	return &entity.User{
		ID:           id,
		Email:        email,
		PasswordHash: "$2a$10$hash",
		Name:         "Test User",
		Role:         entity.RoleCustomer,
		CreatedAt:    time.Now(),
	}
}

func TestUserRepo_CreateYBusquedas(t *testing.T) {
	s, _ := openStore(t)
	repo := localstore.NewUserRepository(s)

	require.NoError(t, repo.Create(testUser("1", "a@hwshop.com")))
	require.NoError(t, repo.Create(testUser("2", "b@hwshop.com")))

	byID, err := repo.FindByID("2")
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "b@hwshop.com", byID.Email)

	byEmail, err := repo.FindByEmail("a@hwshop.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "1", byEmail.ID)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestUserRepo_EmailDuplicado(t *testing.T) {
	s, _ := openStore(t)
	repo := localstore.NewUserRepository(s)

	require.NoError(t, repo.Create(testUser("1", "a@hwshop.com")))
	err := repo.Create(testUser("2", "a@hwshop.com"))
	assert.Error(t, err, "el email es único en el directorio")
}

func TestUserRepo_AusentesDevuelvenNil(t *testing.T) {
	s, _ := openStore(t)
	repo := localstore.NewUserRepository(s)

	byID, err := repo.FindByID("fantasma")
	require.NoError(t, err)
	assert.Nil(t, byID)

	byEmail, err := repo.FindByEmail("nadie@hwshop.com")
	require.NoError(t, err)
	assert.Nil(t, byEmail)
}

func TestSessionRepo_Ciclo(t *testing.T) {
	s, _ := openStore(t)
	repo := localstore.NewSessionRepository(s)

	current, err := repo.Current()
	require.NoError(t, err)
	assert.Nil(t, current, "sin sesión = nil")

	require.NoError(t, repo.Set(testUser("1", "a@hwshop.com")))
	current, err = repo.Current()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "1", current.ID)

	require.NoError(t, repo.Clear())
	current, err = repo.Current()
	require.NoError(t, err)
	assert.Nil(t, current)

	require.NoError(t, repo.Clear(), "limpiar sin sesión es no-op")
}
