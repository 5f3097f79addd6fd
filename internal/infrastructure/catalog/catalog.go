// Package catalog expone el catálogo semilla de la tienda: la lista fija de
// keycap sets y las ediciones limitadas del carrusel. No hay backend real;
// esta data reemplaza a la base de datos.
package catalog

import (
	"sync"

	"github.com/hwshop/storefront-api/internal/domain"
	"github.com/hwshop/storefront-api/internal/domain/entity"
	"github.com/hwshop/storefront-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*Repo)(nil)

// Repo catálogo en memoria. Update muta solo la copia del proceso: las
// ediciones desde las vistas admin/staff no sobreviven un reinicio.
type Repo struct {
	mu       sync.RWMutex
	products []*entity.Product
	limited  []*entity.LimitedEdition
}

// NewRepository construye el catálogo con la data semilla.
func NewRepository() *Repo {
	return &Repo{products: seedProducts(), limited: seedLimitedEditions()}
}

// List devuelve copias de todos los productos en el orden del catálogo.
func (r *Repo) List() []*entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, len(r.products))
	for i, p := range r.products {
		cp := *p
		out[i] = &cp
	}
	return out
}

// GetByID devuelve una copia del producto o nil si no existe.
func (r *Repo) GetByID(id string) *entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp
		}
	}
	return nil
}

// LimitedEditions devuelve los registros promocionales del carrusel.
func (r *Repo) LimitedEditions() []*entity.LimitedEdition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.limited
}

// Update reemplaza el producto en la copia en memoria (edición local-only).
func (r *Repo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == product.ID {
			cp := *product
			r.products[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}
