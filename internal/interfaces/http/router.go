// Package http arma las rutas Fiber de la API del storefront.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hwshop/storefront-api/internal/domain/entity"
)

// RouterDeps dependencias de todas las rutas.
type RouterDeps struct {
	Auth      *AuthHandler
	Catalog   *CatalogHandler
	Cart      *CartHandler
	Checkout  *CheckoutHandler
	Orders    *OrderHandler
	JWTSecret string
}

// Router registra rutas públicas, autenticadas y las del back-office
// con sus guards de rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Públicas
	authGroup := api.Group("/auth")
	authGroup.Post("/login", deps.Auth.Login)
	authGroup.Post("/register", deps.Auth.Register)
	authGroup.Post("/logout", deps.Auth.Logout)

	api.Get("/products", deps.Catalog.List)
	api.Get("/products/:id", deps.Catalog.Get)
	api.Get("/limited-editions", deps.Catalog.LimitedEditions)

	// El carrito de la demo es compartido, sin sesión.
	api.Get("/cart", deps.Cart.Get)
	api.Delete("/cart", deps.Cart.Clear)
	api.Post("/cart/items", deps.Cart.Add)
	api.Put("/cart/items/:id", deps.Cart.UpdateQuantity)
	api.Delete("/cart/items/:id", deps.Cart.Remove)

	api.Get("/payment/methods", deps.Checkout.PaymentMethods)
	// El gateway redirige acá sin Authorization header: queda pública. El
	// mock interpreta vnp_ResponseCode sin validar vnp_SecureHash.
	api.Get("/payment/return", deps.Checkout.PaymentReturn)

	// Autenticadas
	authed := api.Group("", AuthMiddleware(deps.JWTSecret))
	authed.Get("/auth/me", deps.Auth.Me)
	authed.Post("/checkout", deps.Checkout.Checkout)

	// Back-office
	admin := authed.Group("/admin")
	admin.Get("/users", RequireRole(entity.RoleAdmin), deps.Auth.ListUsers)
	admin.Get("/overview", RequireRole(entity.RoleAdmin), deps.Orders.Overview)

	staff := RequireRole(entity.RoleAdmin, entity.RoleStaff)
	admin.Get("/orders", staff, deps.Orders.List)
	admin.Get("/orders/:id", staff, deps.Orders.Get)
	admin.Get("/orders/:id/receipt", staff, deps.Orders.Receipt)
	admin.Put("/products/:id", staff, deps.Catalog.Update)
}
