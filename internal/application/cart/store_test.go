package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwshop/storefront-api/internal/application/cart"
	"github.com/hwshop/storefront-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memCartRepo implementación en memoria del puerto de persistencia.
type memCartRepo struct {
	items []entity.CartItem
}

func (r *memCartRepo) Load() []entity.CartItem {
	out := make([]entity.CartItem, len(r.items))
	copy(out, r.items)
	return out
}

func (r *memCartRepo) Save(items []entity.CartItem) error {
	r.items = make([]entity.CartItem, len(items))
	copy(r.items, items)
	return nil
}

func (r *memCartRepo) Clear() error {
	r.items = nil
	return nil
}

func product(id, name string, price string, stock int) entity.Product {
	return entity.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
}

func newStore() *cart.Store {
	return cart.NewStore(&memCartRepo{})
}

// ──────────────────────────────────────────────────────────────────────────────
// Add
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_EntradaNueva(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Add(product("1", "Neon", "89.99", 15), 3))

	items := s.Get()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].Product.ID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, s.Count())
}

func TestAdd_EntradaExistenteAcumula(t *testing.T) {
	s := newStore()
	p := product("1", "Neon", "89.99", 15)
	require.NoError(t, s.Add(p, 2))
	require.NoError(t, s.Add(p, 3))

	items := s.Get()
	require.Len(t, items, 1, "a lo sumo una entrada por producto")
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAdd_RecortaAlStock(t *testing.T) {
	s := newStore()
	p := product("1", "Neon", "89.99", 15)
	require.NoError(t, s.Add(p, 10))
	require.NoError(t, s.Add(p, 10))

	assert.Equal(t, 15, s.QuantityOf("1"), "la cantidad acumulada se recorta al stock")
}

func TestAdd_EntradaNuevaRecortadaAlStock(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Add(product("1", "Neon", "89.99", 5), 99))
	assert.Equal(t, 5, s.QuantityOf("1"))
}

// Add no valida límite inferior: una entrada puede nacer con cantidad 0
// y el producto sigue figurando en el carrito.
func TestAdd_SinLimiteInferior(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Add(product("1", "Neon", "89.99", 15), 0))

	assert.Equal(t, 0, s.QuantityOf("1"))
	assert.True(t, s.Contains("1"), "la entrada existe aunque su cantidad sea 0")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateQuantity_RecortaARango(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Add(product("1", "Neon", "89.99", 15), 5))

	require.NoError(t, s.UpdateQuantity("1", 0))
	assert.Equal(t, 1, s.QuantityOf("1"), "cantidad < 1 se recorta a 1")

	require.NoError(t, s.UpdateQuantity("1", -7))
	assert.Equal(t, 1, s.QuantityOf("1"))

	require.NoError(t, s.UpdateQuantity("1", 999))
	assert.Equal(t, 15, s.QuantityOf("1"), "cantidad > stock se recorta al stock")
}

func TestUpdateQuantity_ProductoAusenteEsNoOp(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Add(product("1", "Neon", "89.99", 15), 2))

	require.NoError(t, s.UpdateQuantity("no-existe", 7))
	assert.Equal(t, 2, s.Count(), "actualizar un producto ausente no muta nada")
	assert.False(t, s.Contains("no-existe"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Remove / Clear
// ──────────────────────────────────────────────────────────────────────────────

func TestRemove_FiltraLaEntrada(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Add(product("1", "Neon", "89.99", 15), 1))
	require.NoError(t, s.Add(product("2", "Cyber", "129.99", 8), 2))

	require.NoError(t, s.Remove("1"))
	assert.False(t, s.Contains("1"))
	assert.True(t, s.Contains("2"))
}

func TestRemove_IDAusenteNoFalla(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Remove("fantasma"))
	assert.Empty(t, s.Get())
}

func TestClear_VaciaElCarrito(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Add(product("1", "Neon", "89.99", 15), 3))
	require.NoError(t, s.Clear())

	assert.Empty(t, s.Get())
	assert.Equal(t, 0, s.Count())
	assert.True(t, s.Total().IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregados: Count / Total
// ──────────────────────────────────────────────────────────────────────────────

func TestTotal_SumaPrecioPorCantidad(t *testing.T) {
	s := newStore()
	require.NoError(t, s.Add(product("1", "Neon", "89.99", 15), 1))
	require.NoError(t, s.Add(product("2", "Cyber", "129.99", 8), 2))

	// 89.99 + 2*129.99 = 349.97
	assert.True(t, decimal.RequireFromString("349.97").Equal(s.Total()),
		"total = suma de precio*cantidad, sin descuentos")
	assert.Equal(t, 3, s.Count())
}

// ──────────────────────────────────────────────────────────────────────────────
// Observadores
// ──────────────────────────────────────────────────────────────────────────────

func TestSubscribe_NotificaCadaMutacion(t *testing.T) {
	s := newStore()
	calls := 0
	cancel := s.Subscribe(func() { calls++ })

	p := product("1", "Neon", "89.99", 15)
	require.NoError(t, s.Add(p, 1))           // 1
	require.NoError(t, s.UpdateQuantity("1", 3)) // 2
	require.NoError(t, s.Remove("1"))         // 3
	require.NoError(t, s.Clear())             // 4
	assert.Equal(t, 4, calls, "cada mutación persistida dispara la notificación")

	cancel()
	require.NoError(t, s.Add(p, 1))
	assert.Equal(t, 4, calls, "tras la baja el observador no recibe más notificaciones")
}

// El contrato es sin payload: el observador debe releer el estado, y esa
// relectura vía la propia API del store no puede bloquearse.
func TestSubscribe_ObservadorPuedeReleerElEstado(t *testing.T) {
	s := newStore()

	var seenCount int
	var seenItems int
	var seenTotal decimal.Decimal
	defer s.Subscribe(func() {
		seenCount = s.Count()
		seenItems = len(s.Get())
		seenTotal = s.Total()
	})()

	require.NoError(t, s.Add(product("1", "Neon", "89.99", 15), 2))

	assert.Equal(t, 2, seenCount, "el observador ve el estado ya mutado")
	assert.Equal(t, 1, seenItems)
	assert.True(t, decimal.RequireFromString("179.98").Equal(seenTotal))

	require.NoError(t, s.Clear())
	assert.Equal(t, 0, seenCount)
	assert.Equal(t, 0, seenItems)
}

func TestSubscribe_UpdateDeAusenteNoNotifica(t *testing.T) {
	s := newStore()
	calls := 0
	defer s.Subscribe(func() { calls++ })()

	require.NoError(t, s.UpdateQuantity("fantasma", 3))
	assert.Equal(t, 0, calls, "el no-op silencioso no dispara notificación")
}
