package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hwshop/storefront-api/internal/application/cart"
	"github.com/hwshop/storefront-api/internal/application/dto"
	"github.com/hwshop/storefront-api/internal/domain/repository"
)

// CartHandler expone el carrito compartido de la demo. Las mutaciones
// resuelven el producto contra el catálogo para tomar el snapshot.
type CartHandler struct {
	store   *cart.Store
	catalog repository.CatalogRepository
}

// NewCartHandler construye el handler del carrito.
func NewCartHandler(store *cart.Store, catalog repository.CatalogRepository) *CartHandler {
	return &CartHandler{store: store, catalog: catalog}
}

func (h *CartHandler) cartResponse() dto.CartResponse {
	return dto.CartResponse{
		Items: h.store.Get(),
		Count: h.store.Count(),
		Total: h.store.Total(),
	}
}

// Get godoc
// @Summary      Estado del carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.cartResponse())
}

// Add godoc
// @Summary      Agregar producto al carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "product_id, quantity"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	p := h.catalog.GetByID(in.ProductID)
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	if err := h.store.Add(*p, qty); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.cartResponse())
}

// UpdateQuantity godoc
// @Summary      Fijar cantidad de una entrada del carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id del producto"
// @Param        body  body  dto.UpdateCartQuantityRequest  true  "quantity"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var in dto.UpdateCartQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.store.UpdateQuantity(c.Params("id"), in.Quantity); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.cartResponse())
}

// Remove godoc
// @Summary      Quitar producto del carrito
// @Tags         cart
// @Produce      json
// @Param        id  path  string  true  "id del producto"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	if err := h.store.Remove(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.cartResponse())
}

// Clear godoc
// @Summary      Vaciar el carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.store.Clear(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.cartResponse())
}
