// Package seed instala la data semilla de la demo: el directorio de
// usuarios y un carrito de ejemplo. Idempotente: los usuarios solo se crean
// con el directorio vacío y el carrito demo está guardado por un flag.
package seed

import (
	"time"

	"github.com/hwshop/storefront-api/internal/application/cart"
	"github.com/hwshop/storefront-api/internal/domain/entity"
	"github.com/hwshop/storefront-api/internal/domain/repository"
	"github.com/hwshop/storefront-api/internal/infrastructure/localstore"
	"github.com/hwshop/storefront-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Installer instala la data semilla en el store local.
type Installer struct {
	users   repository.UserRepository
	catalog repository.CatalogRepository
	cart    *cart.Store
	store   *localstore.Store
	log     *logger.Logger
}

// NewInstaller construye el instalador.
func NewInstaller(users repository.UserRepository, catalog repository.CatalogRepository, cartStore *cart.Store, store *localstore.Store, log *logger.Logger) *Installer {
	return &Installer{users: users, catalog: catalog, cart: cartStore, store: store, log: log}
}

// Install corre ambas semillas. Seguro de invocar en cada arranque.
func (i *Installer) Install() error {
	if err := i.installUsers(); err != nil {
		return err
	}
	return i.installDemoCart()
}

// demoUser credenciales semilla. El password plano existe solo acá: se
// hashea con bcrypt al instalar, nunca se persiste en claro.
type demoUser struct {
	id, email, password, name, role string
	avatar, phone, address          string
	createdAt                       string
}

var demoUsers = []demoUser{
	{
		id: "1", email: "admin@hwshop.com", password: "admin123",
		name: "Admin User", role: entity.RoleAdmin,
		avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		phone:     "+84 123 456 789",
		address:   "123 Nguyễn Huệ, Quận 1, TP.HCM",
		createdAt: "2024-01-01T00:00:00Z",
	},
	{
		id: "2", email: "staff@hwshop.com", password: "staff123",
		name: "Staff User", role: entity.RoleStaff,
		avatar:    "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		phone:     "+84 987 654 321",
		address:   "456 Lê Lợi, Quận 3, TP.HCM",
		createdAt: "2024-01-15T00:00:00Z",
	},
	{
		id: "3", email: "customer@gmail.com", password: "customer123",
		name: "Nguyễn Văn A", role: entity.RoleCustomer,
		avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		phone:     "+84 555 123 456",
		address:   "789 Trần Hưng Đạo, Quận 5, TP.HCM",
		createdAt: "2024-02-01T00:00:00Z",
	},
	{
		id: "4", email: "user@example.com", password: "password123",
		name: "Trần Thị B", role: entity.RoleCustomer,
		avatar:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
		phone:     "+84 777 888 999",
		address:   "321 Võ Văn Tần, Quận 10, TP.HCM",
		createdAt: "2024-02-15T00:00:00Z",
	},
}

func (i *Installer) installUsers() error {
	count, err := i.users.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, d := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		created, _ := time.Parse(time.RFC3339, d.createdAt)
		user := &entity.User{
			ID:           d.id,
			Email:        d.email,
			PasswordHash: string(hash),
			Name:         d.name,
			Role:         d.role,
			Avatar:       d.avatar,
			Phone:        d.phone,
			Address:      d.address,
			CreatedAt:    created,
		}
		if err := i.users.Create(user); err != nil {
			return err
		}
	}
	i.log.Info().Int("users", len(demoUsers)).Msg("directorio de usuarios semilla instalado")
	return nil
}

// installDemoCart agrega productos de muestra al carrito vacío, una sola vez
// (flag cart-initialized).
func (i *Installer) installDemoCart() error {
	if i.store.Has(localstore.KeyCartInitialized) {
		return nil
	}
	if len(i.cart.Get()) == 0 {
		for _, add := range []struct {
			productID string
			qty       int
		}{
			{"1", 1}, // Neon Dreams
			{"2", 2}, // Cyber Punk
			{"4", 1}, // Retro Wave
		} {
			p := i.catalog.GetByID(add.productID)
			if p == nil {
				continue
			}
			if err := i.cart.Add(*p, add.qty); err != nil {
				return err
			}
		}
		i.log.Info().Msg("carrito demo instalado")
	}
	return i.store.Set(localstore.KeyCartInitialized, true)
}
