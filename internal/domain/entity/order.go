package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSchemaVersion versión actual del blob serializado de Order.
// Registros sin el campo (version 0) se tratan como la versión 1; cualquier
// cambio de forma futuro debe migrar explícitamente en el repositorio.
const OrderSchemaVersion = 1

// OrderStatus estado de una orden. Máquina de estados:
//
//	pending -> paid | failed   (callback del gateway)
//	confirmed                  (contraentrega, sin paso por pending)
//
// No hay transición definida fuera de paid, failed ni confirmed.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPaid      OrderStatus = "paid"
	OrderFailed    OrderStatus = "failed"
)

// IsTerminal indica si el estado no admite más transiciones.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderPaid || s == OrderFailed || s == OrderConfirmed
}

// TransactionStatus resultado de la verificación del gateway.
// El adaptador actual nunca produce "pending": se preserva en el tipo porque
// la forma del contrato lo declara.
type TransactionStatus string

const (
	TxSuccess TransactionStatus = "success"
	TxFailed  TransactionStatus = "failed"
	TxPending TransactionStatus = "pending"
)

// PaymentResult copia del resultado de verificación que se incrusta en la
// orden tras el callback del gateway.
type PaymentResult struct {
	Success           bool              `json:"success"`
	TransactionStatus TransactionStatus `json:"transaction_status"`
	Message           string            `json:"message"`
	OrderID           string            `json:"order_id,omitempty"`
	Amount            decimal.Decimal   `json:"amount"`
}

// OrderItem línea de compra: snapshot de producto, NO referencia viva al catálogo.
type OrderItem struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
}

// ShippingInfo datos de envío capturados en el checkout.
type ShippingInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
	Ward     string `json:"ward"`
	Note     string `json:"note,omitempty"`
}

// Order una orden persistida (un blob por clave, nunca se borra).
// Se reescribe completa en cada mutación; no existe update parcial.
type Order struct {
	SchemaVersion int             `json:"schema_version"`
	OrderID       string          `json:"order_id"`
	Items         []OrderItem     `json:"items"`
	Shipping      ShippingInfo    `json:"shipping_info"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ShippingFee   decimal.Decimal `json:"shipping"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	PaymentResult *PaymentResult  `json:"payment_result,omitempty"`
}
