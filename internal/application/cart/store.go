// Package cart implementa el agregado del carrito: lista ordenada de
// (producto, cantidad) persistida como un único blob, con notificación a
// observadores en cada mutación.
//
// Reglas de clamping (heredadas de la demo original, ver DESIGN.md):
//   - Add sobre entrada existente: qty += n, recortado al stock del producto.
//   - Add de entrada nueva: min(n, stock); NO hay límite inferior de 1.
//   - UpdateQuantity: recortado a [1, stock]; no-op si la entrada no existe.
package cart

import (
	"sync"

	"github.com/hwshop/storefront-api/internal/domain/entity"
	"github.com/hwshop/storefront-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Store agregado del carrito. A lo sumo una entrada por producto; cada
// mutación reescribe el blob completo y dispara la notificación. Los
// observadores no reciben payload: deben releer el estado, por eso la
// notificación corre fuera del lock (releer vía esta misma API es seguro).
type Store struct {
	mu     sync.Mutex
	repo   repository.CartRepository
	subs   map[int]func()
	nextID int
}

// NewStore construye el store sobre el puerto de persistencia.
func NewStore(repo repository.CartRepository) *Store {
	return &Store{repo: repo, subs: make(map[int]func())}
}

// Subscribe registra un observador y devuelve su función de baja.
// El callback se invoca sincrónicamente tras cada mutación persistida, fuera
// del lock: releer el estado desde el callback es seguro.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// notify invoca todos los observadores sobre un snapshot del registro.
// Caller NO debe tener el lock: los callbacks releen el estado del carrito.
func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// Get devuelve la lista ordenada de entradas. Data ausente o corrupta
// degrada a lista vacía.
func (s *Store) Get() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Load()
}

// Add agrega quantity unidades del producto (snapshot, no referencia).
// Persiste y notifica en cada llamada.
func (s *Store) Add(product entity.Product, quantity int) error {
	s.mu.Lock()
	items := s.repo.Load()
	found := false
	for i := range items {
		if items[i].Product.ID == product.ID {
			items[i].Quantity += quantity
			if items[i].Quantity > product.Stock {
				items[i].Quantity = product.Stock
			}
			found = true
			break
		}
	}
	if !found {
		q := quantity
		if q > product.Stock {
			q = product.Stock
		}
		items = append(items, entity.CartItem{Product: product, Quantity: q})
	}
	err := s.repo.Save(items)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// UpdateQuantity fija la cantidad de la entrada, recortada a [1, stock del
// snapshot]. Si el producto no está en el carrito es un no-op silencioso.
func (s *Store) UpdateQuantity(productID string, quantity int) error {
	s.mu.Lock()
	items := s.repo.Load()
	for i := range items {
		if items[i].Product.ID == productID {
			q := quantity
			if q < 1 {
				q = 1
			}
			if q > items[i].Product.Stock {
				q = items[i].Product.Stock
			}
			items[i].Quantity = q
			err := s.repo.Save(items)
			s.mu.Unlock()

			if err != nil {
				return err
			}
			s.notify()
			return nil
		}
	}
	s.mu.Unlock()
	return nil
}

// Remove filtra la entrada del producto. Remover un id ausente no falla.
func (s *Store) Remove(productID string) error {
	s.mu.Lock()
	items := s.repo.Load()
	filtered := items[:0]
	for _, it := range items {
		if it.Product.ID != productID {
			filtered = append(filtered, it)
		}
	}
	err := s.repo.Save(filtered)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Clear borra el blob completo del carrito y notifica.
func (s *Store) Clear() error {
	s.mu.Lock()
	err := s.repo.Clear()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Count suma las cantidades de todas las entradas.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.repo.Load() {
		total += it.Quantity
	}
	return total
}

// Total suma precio*cantidad sobre todas las entradas, sin descuentos, en la
// unidad base de la moneda del producto.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, it := range s.repo.Load() {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Contains indica si existe una entrada para el producto (aunque su
// cantidad sea 0, posible vía Add sin límite inferior).
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.repo.Load() {
		if it.Product.ID == productID {
			return true
		}
	}
	return false
}

// QuantityOf devuelve la cantidad de un producto, 0 si no está.
func (s *Store) QuantityOf(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.repo.Load() {
		if it.Product.ID == productID {
			return it.Quantity
		}
	}
	return 0
}
