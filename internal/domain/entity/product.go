package entity

import "github.com/shopspring/decimal"

// Product representa un keycap set del catálogo. El catálogo es inmutable
// durante la vida del proceso; las ediciones desde las vistas admin/staff son
// locales (copia en memoria) y nunca se persisten de vuelta a la fuente.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"` // imagen principal
	Theme       string          `json:"theme"`
	Popularity  int             `json:"popularity"` // 0-100
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	Images      []string        `json:"images"` // galería
	Layout      string          `json:"layout,omitempty"`  // opcional: 60%, TKL, full-size
	Profile     string          `json:"profile,omitempty"` // opcional: Cherry, OEM, SA, XDA
}

// StarRating convierte la popularidad 0-100 a estrellas 0-5 (división entera).
func (p *Product) StarRating() int {
	return p.Popularity / 20
}

// LimitedEdition registro promocional del carrusel de ediciones limitadas.
// Price es texto de display, no participa en ningún cálculo.
type LimitedEdition struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	Price    string `json:"price"`
}
