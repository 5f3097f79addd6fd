package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hwshop/storefront-api/internal/application/dto"
	"github.com/hwshop/storefront-api/internal/application/usecase"
	"github.com/hwshop/storefront-api/internal/domain"
)

// CatalogHandler expone navegación del catálogo y edición admin/staff.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler de catálogo.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Listar catálogo con filtros
// @Tags         catalog
// @Produce      json
// @Param        theme        query  string  false  "tema ('All' = sin filtro)"
// @Param        price_range  query  string  false  "$0-50 | $50-100 | $100-150 | $150+"
// @Param        sort         query  string  false  "popularity | price-asc | price-desc | name"
// @Param        q            query  string  false  "búsqueda en nombre/descripción/tema"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	var q dto.CatalogQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.List(q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price_range no reconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalle de un producto
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "id del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	p := h.uc.GetByID(c.Params("id"))
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(p)
}

// LimitedEditions godoc
// @Summary      Ediciones limitadas del carrusel
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.LimitedEditionResponse
// @Router       /api/limited-editions [get]
func (h *CatalogHandler) LimitedEditions(c *fiber.Ctx) error {
	return c.JSON(h.uc.LimitedEditions())
}

// Update godoc
// @Summary      Editar producto (admin/staff, solo en memoria)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "campos a modificar"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock debe ser >= 0 y popularity estar en [0,100]"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
