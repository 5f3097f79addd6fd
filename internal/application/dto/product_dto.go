package dto

import "github.com/shopspring/decimal"

// CatalogQuery filtros y orden del listado de catálogo.
// Theme/PriceRange "All" (o vacío) = sin filtro. Sort: popularity (default),
// price-asc, price-desc, name. Search aplica folding de diacríticos.
type CatalogQuery struct {
	Theme      string `query:"theme"`
	PriceRange string `query:"price_range"` // $0-50, $50-100, $100-150, $150+
	Sort       string `query:"sort"`
	Search     string `query:"q"`
}

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Theme       string          `json:"theme"`
	Popularity  int             `json:"popularity"`
	Rating      int             `json:"rating"` // popularity/20, proxy de 5 estrellas
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	Images      []string        `json:"images"`
	Layout      string          `json:"layout,omitempty"`
	Profile     string          `json:"profile,omitempty"`
}

// ProductListResponse listado filtrado del catálogo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// UpdateProductRequest edición local-only desde las vistas admin/staff.
// Solo muta la copia en memoria del catálogo, nunca la fuente.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price       *decimal.Decimal `json:"price"`
	Theme       *string          `json:"theme"`
	Description *string          `json:"description"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	Popularity  *int             `json:"popularity" validate:"omitempty,min=0,max=100"`
}

// LimitedEditionResponse registro promocional del carrusel.
type LimitedEditionResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	Price    string `json:"price"`
}
