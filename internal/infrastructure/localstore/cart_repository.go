package localstore

import (
	"github.com/hwshop/storefront-api/internal/domain/entity"
	"github.com/hwshop/storefront-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo el carrito completo como un único blob bajo KeyCart.
type CartRepo struct {
	store *Store
}

// NewCartRepository construye el adaptador de persistencia del carrito.
func NewCartRepository(store *Store) *CartRepo {
	return &CartRepo{store: store}
}

// Load devuelve las entradas del carrito. Data ausente o corrupta degrada a
// carrito vacío, sin error hacia el caller.
func (r *CartRepo) Load() []entity.CartItem {
	var items []entity.CartItem
	if !r.store.Get(KeyCart, &items) {
		return []entity.CartItem{}
	}
	return items
}

// Save reescribe el blob completo del carrito.
func (r *CartRepo) Save(items []entity.CartItem) error {
	return r.store.Set(KeyCart, items)
}

// Clear borra el blob completo.
func (r *CartRepo) Clear() error {
	return r.store.Delete(KeyCart)
}
