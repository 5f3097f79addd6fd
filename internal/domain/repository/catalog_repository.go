package repository

import "github.com/hwshop/storefront-api/internal/domain/entity"

// CatalogRepository define el puerto de lectura del catálogo de productos.
// El catálogo es data semilla inmutable; Update solo afecta la copia en
// memoria del proceso (las vistas admin/staff editan localmente, nada se
// persiste de vuelta a la fuente).
type CatalogRepository interface {
	List() []*entity.Product
	GetByID(id string) *entity.Product
	LimitedEditions() []*entity.LimitedEdition
	Update(product *entity.Product) error
}
