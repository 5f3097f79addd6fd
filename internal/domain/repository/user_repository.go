package repository

import "github.com/hwshop/storefront-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Count() (int, error)
}

// SessionRepository sesión actual: a lo sumo un User, espejo en el store
// durable bajo una clave fija. Ausencia de clave = sin sesión.
type SessionRepository interface {
	Current() (*entity.User, error)
	Set(user *entity.User) error
	Clear() error
}
