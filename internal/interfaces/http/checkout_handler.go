package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hwshop/storefront-api/internal/application/checkout"
	"github.com/hwshop/storefront-api/internal/application/dto"
	"github.com/hwshop/storefront-api/internal/domain"
)

// CheckoutHandler expone checkout, métodos de pago y el retorno del gateway.
type CheckoutHandler struct {
	uc *checkout.UseCase
}

// NewCheckoutHandler construye el handler de checkout.
func NewCheckoutHandler(uc *checkout.UseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Checkout godoc
// @Summary      Crear orden desde el carrito actual
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "shipping_info, payment_method"
// @Success      201  {object}  dto.CheckoutResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Checkout(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, email, teléfono y dirección son requeridos"})
		case errors.Is(err, domain.ErrUnknownPayMethod):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_PAY_METHOD", Message: "método de pago no reconocido o deshabilitado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PaymentMethods godoc
// @Summary      Métodos de pago disponibles
// @Tags         checkout
// @Produce      json
// @Success      200  {array}  vnpay.PaymentMethod
// @Router       /api/payment/methods [get]
func (h *CheckoutHandler) PaymentMethods(c *fiber.Ctx) error {
	return c.JSON(h.uc.PaymentMethods())
}

// PaymentReturn godoc
// @Summary      Retorno del gateway de pago
// @Description  Procesa los parámetros vnp_* del redirect: interpreta el
// @Description  código de respuesta y transiciona la orden pendiente a paid
// @Description  o failed. El mock no valida vnp_SecureHash.
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  dto.PaymentReturnResponse
// @Router       /api/payment/return [get]
func (h *CheckoutHandler) PaymentReturn(c *fiber.Ctx) error {
	params := make(map[string]string)
	for k, v := range c.Queries() {
		params[k] = v
	}
	out, err := h.uc.HandleReturn(params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
