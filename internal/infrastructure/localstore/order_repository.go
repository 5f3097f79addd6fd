package localstore

import (
	"github.com/hwshop/storefront-api/internal/domain/entity"
	"github.com/hwshop/storefront-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo un blob por orden bajo order_<id>; sin índices. El listado
// escanea las claves por prefijo. Las órdenes nunca se borran.
type OrderRepo struct {
	store *Store
}

// NewOrderRepository construye el adaptador de persistencia de órdenes.
func NewOrderRepository(store *Store) *OrderRepo {
	return &OrderRepo{store: store}
}

// Save reescribe el registro completo (no existe update parcial).
func (r *OrderRepo) Save(order *entity.Order) error {
	if order.SchemaVersion == 0 {
		order.SchemaVersion = entity.OrderSchemaVersion
	}
	return r.store.Set(OrderKeyPrefix+order.OrderID, order)
}

// GetByID devuelve la orden o nil, nil si la clave no existe.
func (r *OrderRepo) GetByID(orderID string) (*entity.Order, error) {
	var o entity.Order
	if !r.store.Get(OrderKeyPrefix+orderID, &o) {
		return nil, nil
	}
	migrate(&o)
	return &o, nil
}

// List devuelve todas las órdenes, ordenadas por clave.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	keys := r.store.Keys(OrderKeyPrefix)
	orders := make([]*entity.Order, 0, len(keys))
	for _, k := range keys {
		var o entity.Order
		if !r.store.Get(k, &o) {
			continue // blob corrupto = ausente
		}
		migrate(&o)
		orders = append(orders, &o)
	}
	return orders, nil
}

// migrate normaliza blobs legacy: registros sin schema_version son la v1.
func migrate(o *entity.Order) {
	if o.SchemaVersion == 0 {
		o.SchemaVersion = entity.OrderSchemaVersion
	}
}
