// Package checkout implementa la creación de órdenes y el procesamiento del
// retorno del gateway de pago simulado.
package checkout

import (
	"fmt"
	"time"

	"github.com/hwshop/storefront-api/internal/application/cart"
	"github.com/hwshop/storefront-api/internal/application/dto"
	"github.com/hwshop/storefront-api/internal/domain"
	"github.com/hwshop/storefront-api/internal/domain/entity"
	"github.com/hwshop/storefront-api/internal/domain/repository"
	"github.com/hwshop/storefront-api/internal/infrastructure/vnpay"
	"github.com/hwshop/storefront-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Reglas de totales del checkout: envío gratis sobre 100, impuesto del 10%.
var (
	freeShippingOver = decimal.NewFromInt(100)
	shippingFlatFee  = decimal.NewFromInt(15)
	taxRate          = decimal.NewFromFloat(0.1)
)

// UseCase orquesta carrito -> totales -> orden -> (redirección | confirmación).
type UseCase struct {
	cart    *cart.Store
	orders  repository.OrderRepository
	gateway *vnpay.Service
	log     *logger.Logger
}

// NewUseCase construye el caso de uso de checkout.
func NewUseCase(cartStore *cart.Store, orders repository.OrderRepository, gateway *vnpay.Service, log *logger.Logger) *UseCase {
	return &UseCase{cart: cartStore, orders: orders, gateway: gateway, log: log}
}

// Checkout valida envío y método, calcula totales sobre el carrito actual y
// persiste la orden: pending + URL de redirección para el gateway,
// confirmed sin redirección para contraentrega.
func (uc *UseCase) Checkout(in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	items := uc.cart.Get()
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if in.Shipping.FullName == "" || in.Shipping.Email == "" || in.Shipping.Phone == "" || in.Shipping.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	if !vnpay.MethodEnabled(in.PaymentMethod) {
		return nil, domain.ErrUnknownPayMethod
	}

	subtotal := uc.cart.Total()
	shipping := shippingFlatFee
	if subtotal.GreaterThan(freeShippingOver) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(taxRate)
	total := subtotal.Add(shipping).Add(tax)

	orderID := uc.gateway.GenerateOrderID()
	order := &entity.Order{
		SchemaVersion: entity.OrderSchemaVersion,
		OrderID:       orderID,
		Items:         toOrderItems(items),
		Shipping:      in.Shipping,
		Subtotal:      subtotal,
		ShippingFee:   shipping,
		Tax:           tax,
		Total:         total,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     time.Now(),
	}

	switch in.PaymentMethod {
	case vnpay.MethodVNPay:
		result := uc.gateway.CreatePaymentURL(vnpay.PaymentRequest{
			Amount:    total,
			OrderInfo: fmt.Sprintf("Thanh toan don hang %s - HWSHOP", orderID),
			OrderID:   orderID,
		})
		if !result.Success {
			return nil, fmt.Errorf("crear URL de pago: %s", result.Message)
		}
		order.Status = entity.OrderPending
		if err := uc.orders.Save(order); err != nil {
			return nil, err
		}
		uc.log.Info().Str("order_id", orderID).Str("method", in.PaymentMethod).Msg("orden pendiente, redirigiendo al gateway")
		return &dto.CheckoutResponse{
			OrderID:    orderID,
			Status:     order.Status,
			PaymentURL: result.PaymentURL,
			Order:      order,
		}, nil

	case vnpay.MethodCOD:
		// Contraentrega: confirma directo, sin pasar por pending ni redirigir.
		order.Status = entity.OrderConfirmed
		if err := uc.orders.Save(order); err != nil {
			return nil, err
		}
		uc.log.Info().Str("order_id", orderID).Msg("orden confirmada contraentrega")
		return &dto.CheckoutResponse{OrderID: orderID, Status: order.Status, Order: order}, nil

	default:
		return nil, domain.ErrUnknownPayMethod
	}
}

// HandleReturn procesa los parámetros del callback: verifica con el
// adaptador, busca la orden por vnp_TxnRef y aplica la transición
// pending -> paid | failed, incrustando el resultado de verificación.
// Un callback sobre una orden ya terminal no muta nada.
func (uc *UseCase) HandleReturn(params map[string]string) (*dto.PaymentReturnResponse, error) {
	result := uc.gateway.VerifyPaymentResponse(params)
	resp := &dto.PaymentReturnResponse{Result: result}

	if result.OrderID == "" {
		return resp, nil
	}
	order, err := uc.orders.GetByID(result.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		uc.log.Warn().Str("order_id", result.OrderID).Msg("callback para orden desconocida")
		return resp, nil
	}

	if !order.Status.IsTerminal() {
		if result.Success {
			order.Status = entity.OrderPaid
		} else {
			order.Status = entity.OrderFailed
		}
		order.PaymentResult = &result
		if err := uc.orders.Save(order); err != nil {
			return nil, err
		}
		uc.log.Info().Str("order_id", order.OrderID).Str("status", string(order.Status)).Msg("orden actualizada por callback")
	} else {
		uc.log.Warn().Str("order_id", order.OrderID).Str("status", string(order.Status)).Msg("callback sobre orden terminal, se ignora")
	}

	resp.Order = order
	return resp, nil
}

// PaymentMethods catálogo de métodos de pago para el checkout.
func (uc *UseCase) PaymentMethods() []vnpay.PaymentMethod {
	return vnpay.PaymentMethods()
}

func toOrderItems(items []entity.CartItem) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, entity.OrderItem{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Price:     it.Product.Price,
			Quantity:  it.Quantity,
			Image:     it.Product.Image,
		})
	}
	return out
}
