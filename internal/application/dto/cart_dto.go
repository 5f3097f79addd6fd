package dto

import (
	"github.com/hwshop/storefront-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// AddCartItemRequest agrega un producto al carrito. Quantity 0 usa 1.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartQuantityRequest fija la cantidad de una entrada existente.
type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

// CartResponse estado completo del carrito más agregados.
type CartResponse struct {
	Items []entity.CartItem `json:"items"`
	Count int               `json:"count"`
	Total decimal.Decimal   `json:"total"`
}
