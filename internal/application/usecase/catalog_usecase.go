package usecase

import (
	"sort"
	"strings"
	"unicode"

	"github.com/hwshop/storefront-api/internal/application/dto"
	"github.com/hwshop/storefront-api/internal/domain"
	"github.com/hwshop/storefront-api/internal/domain/entity"
	"github.com/hwshop/storefront-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CatalogUseCase navegación del catálogo: filtros, orden y búsqueda.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// List aplica filtros de tema, rango de precio y búsqueda, y ordena.
// "All" o vacío desactiva cada filtro, igual que la página Home original.
func (uc *CatalogUseCase) List(q dto.CatalogQuery) (*dto.ProductListResponse, error) {
	products := uc.repo.List()

	if q.Theme != "" && q.Theme != "All" {
		products = filterProducts(products, func(p *entity.Product) bool {
			return p.Theme == q.Theme
		})
	}

	if q.PriceRange != "" && q.PriceRange != "All" {
		min, max, open, ok := parsePriceRange(q.PriceRange)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		products = filterProducts(products, func(p *entity.Product) bool {
			if open {
				return p.Price.GreaterThanOrEqual(min)
			}
			return p.Price.GreaterThanOrEqual(min) && p.Price.LessThanOrEqual(max)
		})
	}

	if q.Search != "" {
		needle := fold(q.Search)
		products = filterProducts(products, func(p *entity.Product) bool {
			return strings.Contains(fold(p.Name), needle) ||
				strings.Contains(fold(p.Description), needle) ||
				strings.Contains(fold(p.Theme), needle)
		})
	}

	sortProducts(products, q.Sort)

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// GetByID devuelve el producto o nil si no existe.
func (uc *CatalogUseCase) GetByID(id string) *dto.ProductResponse {
	p := uc.repo.GetByID(id)
	if p == nil {
		return nil
	}
	return toProductResponse(p)
}

// LimitedEditions registros promocionales del carrusel.
func (uc *CatalogUseCase) LimitedEditions() []dto.LimitedEditionResponse {
	list := uc.repo.LimitedEditions()
	out := make([]dto.LimitedEditionResponse, 0, len(list))
	for _, le := range list {
		out = append(out, dto.LimitedEditionResponse{
			ID:       le.ID,
			Title:    le.Title,
			Subtitle: le.Subtitle,
			Image:    le.Image,
			Price:    le.Price,
		})
	}
	return out
}

// Update edición local-only desde las vistas admin/staff: muta la copia en
// memoria del catálogo, nunca se persiste de vuelta a la fuente.
func (uc *CatalogUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p := uc.repo.GetByID(id)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Theme != nil {
		p.Theme = *in.Theme
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		p.Stock = *in.Stock
	}
	if in.Popularity != nil {
		if *in.Popularity < 0 || *in.Popularity > 100 {
			return nil, domain.ErrInvalidInput
		}
		p.Popularity = *in.Popularity
	}
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func filterProducts(in []*entity.Product, keep func(*entity.Product) bool) []*entity.Product {
	out := in[:0]
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// parsePriceRange interpreta los buckets de la UI: "$0-50", "$50-100",
// "$100-150" o el abierto "$150+". open=true significa "min o más".
func parsePriceRange(s string) (min, max decimal.Decimal, open, ok bool) {
	s = strings.TrimPrefix(s, "$")
	if strings.HasSuffix(s, "+") {
		v, err := decimal.NewFromString(strings.TrimSuffix(s, "+"))
		if err != nil {
			return decimal.Zero, decimal.Zero, false, false
		}
		return v, decimal.Zero, true, true
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return decimal.Zero, decimal.Zero, false, false
	}
	lo, err1 := decimal.NewFromString(parts[0])
	hi, err2 := decimal.NewFromString(parts[1])
	if err1 != nil || err2 != nil {
		return decimal.Zero, decimal.Zero, false, false
	}
	return lo, hi, false, true
}

func sortProducts(products []*entity.Product, by string) {
	switch by {
	case "price-asc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case "price-desc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case "name":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	default: // popularity
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Popularity > products[j].Popularity
		})
	}
}

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone.
// Permite que "thanh toán" matchee "thanh toan" en catálogo con texto vietnamita.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Image:       p.Image,
		Theme:       p.Theme,
		Popularity:  p.Popularity,
		Rating:      p.StarRating(),
		Description: p.Description,
		Stock:       p.Stock,
		Images:      p.Images,
		Layout:      p.Layout,
		Profile:     p.Profile,
	}
}
