package localstore

import (
	"github.com/hwshop/storefront-api/internal/domain"
	"github.com/hwshop/storefront-api/internal/domain/entity"
	"github.com/hwshop/storefront-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo directorio de usuarios sobre el store local: toda la lista vive
// en un único blob bajo KeyUsers (el original la tenía en memoria y solo
// espejaba la sesión). El login hace scan lineal por email.
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el adaptador de persistencia de usuarios.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) load() []*entity.User {
	var users []*entity.User
	r.store.Get(KeyUsers, &users)
	return users
}

// Create agrega un usuario. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (r *UserRepo) Create(user *entity.User) error {
	users := r.load()
	for _, u := range users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	users = append(users, user)
	return r.store.Set(KeyUsers, users)
}

// FindByID busca por id. Devuelve nil, nil si no existe.
func (r *UserRepo) FindByID(id string) (*entity.User, error) {
	for _, u := range r.load() {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// FindByEmail busca por email (clave única de login). Devuelve nil, nil si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.load() {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// List devuelve todos los usuarios en orden de inserción.
func (r *UserRepo) List() ([]*entity.User, error) {
	return r.load(), nil
}

// Count devuelve el número de usuarios registrados.
func (r *UserRepo) Count() (int, error) {
	return len(r.load()), nil
}

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo sesión actual bajo la clave fija KeySession.
type SessionRepo struct {
	store *Store
}

// NewSessionRepository construye el adaptador de sesión.
func NewSessionRepository(store *Store) *SessionRepo {
	return &SessionRepo{store: store}
}

// Current devuelve el usuario de la sesión o nil si no hay clave en el store.
func (r *SessionRepo) Current() (*entity.User, error) {
	var u entity.User
	if !r.store.Get(KeySession, &u) {
		return nil, nil
	}
	return &u, nil
}

// Set espeja el usuario logueado al store durable.
func (r *SessionRepo) Set(user *entity.User) error {
	return r.store.Set(KeySession, user)
}

// Clear elimina la sesión (logout explícito).
func (r *SessionRepo) Clear() error {
	return r.store.Delete(KeySession)
}
