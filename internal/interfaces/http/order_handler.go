package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/hwshop/storefront-api/internal/application/dto"
	"github.com/hwshop/storefront-api/internal/application/usecase"
	"github.com/hwshop/storefront-api/internal/domain"
)

// OrderHandler vistas back-office de órdenes: listado, detalle, recibo PDF
// y métricas del dashboard.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler de órdenes.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar órdenes (admin/staff)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Order
// @Router       /api/admin/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(orders)
}

// Get godoc
// @Summary      Detalle de una orden (admin/staff)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id de la orden"
// @Success      200  {object}  entity.Order
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/orders/{id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	order, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(order)
}

// Receipt godoc
// @Summary      Recibo PDF de una orden (admin/staff)
// @Tags         admin
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "id de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	orderID := c.Params("id")
	pdfBytes, err := h.uc.Receipt(orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="recibo_%s.pdf"`, orderID))
	return c.Send(pdfBytes)
}

// Overview godoc
// @Summary      Métricas del dashboard (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OverviewResponse
// @Router       /api/admin/overview [get]
func (h *OrderHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
