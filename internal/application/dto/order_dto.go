package dto

import (
	"github.com/hwshop/storefront-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CheckoutRequest entrada del checkout: datos de envío + método de pago.
type CheckoutRequest struct {
	Shipping      entity.ShippingInfo `json:"shipping_info"`
	PaymentMethod string              `json:"payment_method" validate:"required"`
}

// CheckoutResponse resultado del checkout. PaymentURL solo viene con el
// método de gateway; contraentrega confirma de inmediato y no redirige.
type CheckoutResponse struct {
	OrderID    string             `json:"order_id"`
	Status     entity.OrderStatus `json:"status"`
	PaymentURL string             `json:"payment_url,omitempty"`
	Order      *entity.Order      `json:"order"`
}

// PaymentReturnResponse resultado de procesar el callback del gateway.
// Order puede ser nil si el vnp_TxnRef no corresponde a una orden guardada.
type PaymentReturnResponse struct {
	Result entity.PaymentResult `json:"result"`
	Order  *entity.Order        `json:"order,omitempty"`
}

// OverviewResponse métricas del dashboard admin.
type OverviewResponse struct {
	Products int             `json:"products"`
	Orders   int             `json:"orders"`
	Users    int             `json:"users"`
	Revenue  decimal.Decimal `json:"revenue"` // suma de totales de órdenes paid + confirmed
}
