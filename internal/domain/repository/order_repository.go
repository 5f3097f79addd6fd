package repository

import "github.com/hwshop/storefront-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order.
// Un blob por orden bajo clave con prefijo fijo; sin índices, el listado es
// un escaneo de claves por prefijo. Las órdenes nunca se borran.
type OrderRepository interface {
	Save(order *entity.Order) error
	GetByID(orderID string) (*entity.Order, error)
	List() ([]*entity.Order, error)
}

// CartRepository puerto de persistencia del carrito: un único blob
// serializado bajo una clave fija. Load degrada a carrito vacío ante data
// ausente o corrupta (el error de parseo no se propaga al caller).
type CartRepository interface {
	Load() []entity.CartItem
	Save(items []entity.CartItem) error
	Clear() error
}
