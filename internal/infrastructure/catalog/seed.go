package catalog

import (
	"github.com/hwshop/storefront-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seedProducts data semilla del catálogo. Los tags de layout/profile solo
// existen en los sets más recientes del catálogo.
func seedProducts() []*entity.Product {
	return []*entity.Product{
		{
			ID:          "1",
			Name:        "Neon Dreams",
			Price:       price("89.99"),
			Image:       "https://images.unsplash.com/photo-1721492631645-d8c12f883bb9?w=500",
			Theme:       "Colorful",
			Popularity:  95,
			Description: "Vibrant gradient keycaps with a dreamy neon aesthetic. Perfect for those who want their keyboard to stand out.",
			Stock:       12,
			Images: []string{
				"https://images.unsplash.com/photo-1721492631645-d8c12f883bb9?w=800",
				"https://images.unsplash.com/photo-1645802106095-765b7e86f5bb?w=800",
				"https://images.unsplash.com/photo-1615869442289-f35f5173db8d?w=800",
			},
		},
		{
			ID:          "2",
			Name:        "Cyber Punk",
			Price:       price("129.99"),
			Image:       "https://images.unsplash.com/photo-1645802106095-765b7e86f5bb?w=500",
			Theme:       "RGB",
			Popularity:  88,
			Description: "RGB backlit compatible keycaps with a futuristic cyberpunk theme. Shine-through legends for maximum visibility.",
			Stock:       8,
			Images: []string{
				"https://images.unsplash.com/photo-1645802106095-765b7e86f5bb?w=800",
				"https://images.unsplash.com/photo-1721492631645-d8c12f883bb9?w=800",
				"https://images.unsplash.com/photo-1702834000621-76c4a9d15868?w=800",
			},
		},
		{
			ID:          "3",
			Name:        "Minimalist White",
			Price:       price("69.99"),
			Image:       "https://images.unsplash.com/photo-1615869442289-f35f5173db8d?w=500",
			Theme:       "Minimal",
			Popularity:  92,
			Description: "Clean and elegant white keycaps with subtle gray legends. Perfect for a professional workspace setup.",
			Stock:       15,
			Images: []string{
				"https://images.unsplash.com/photo-1615869442289-f35f5173db8d?w=800",
				"https://images.unsplash.com/photo-1721492631645-d8c12f883bb9?w=800",
				"https://images.unsplash.com/photo-1645802106095-765b7e86f5bb?w=800",
			},
		},
		{
			ID:          "4",
			Name:        "Retro Wave",
			Price:       price("99.99"),
			Image:       "https://images.unsplash.com/photo-1702834000621-76c4a9d15868?w=500",
			Theme:       "Retro",
			Popularity:  85,
			Description: "80s inspired retro wave design with pink and purple gradients. Nostalgic vibes meet modern quality.",
			Stock:       20,
			Images: []string{
				"https://images.unsplash.com/photo-1702834000621-76c4a9d15868?w=800",
				"https://images.unsplash.com/photo-1615869442289-f35f5173db8d?w=800",
				"https://images.unsplash.com/photo-1645802106095-765b7e86f5bb?w=800",
			},
		},
		{
			ID:          "5",
			Name:        "Ocean Blues",
			Price:       price("79.99"),
			Image:       "https://images.unsplash.com/photo-1721492631645-d8c12f883bb9?w=500",
			Theme:       "Colorful",
			Popularity:  78,
			Description: "Deep ocean blue themed keycaps with wave-inspired designs. Calming aesthetic for focused work sessions.",
			Stock:       10,
			Images: []string{
				"https://images.unsplash.com/photo-1721492631645-d8c12f883bb9?w=800",
				"https://images.unsplash.com/photo-1702834000621-76c4a9d15868?w=800",
				"https://images.unsplash.com/photo-1615869442289-f35f5173db8d?w=800",
			},
		},
		{
			ID:          "6",
			Name:        "Cherry Blossom",
			Price:       price("119.99"),
			Image:       "https://images.unsplash.com/photo-1645802106095-765b7e86f5bb?w=500",
			Theme:       "Pastel",
			Popularity:  90,
			Description: "Soft pink and white keycaps inspired by Japanese cherry blossoms. Delicate and beautiful design.",
			Stock:       5,
			Images: []string{
				"https://images.unsplash.com/photo-1645802106095-765b7e86f5bb?w=800",
				"https://images.unsplash.com/photo-1721492631645-d8c12f883bb9?w=800",
				"https://images.unsplash.com/photo-1702834000621-76c4a9d15868?w=800",
			},
			Layout:  "65%",
			Profile: "Cherry",
		},
		{
			ID:          "7",
			Name:        "Carbon Fiber",
			Price:       price("149.99"),
			Image:       "https://images.unsplash.com/photo-1615869442289-f35f5173db8d?w=500",
			Theme:       "Dark",
			Popularity:  87,
			Description: "Premium carbon fiber texture keycaps with a matte black finish. Ultimate sophistication and durability.",
			Stock:       7,
			Images: []string{
				"https://images.unsplash.com/photo-1615869442289-f35f5173db8d?w=800",
				"https://images.unsplash.com/photo-1645802106095-765b7e86f5bb?w=800",
				"https://images.unsplash.com/photo-1721492631645-d8c12f883bb9?w=800",
			},
			Layout:  "TKL",
			Profile: "OEM",
		},
		{
			ID:          "8",
			Name:        "Sunset Gradient",
			Price:       price("94.99"),
			Image:       "https://images.unsplash.com/photo-1702834000621-76c4a9d15868?w=500",
			Theme:       "Colorful",
			Popularity:  82,
			Description: "Warm sunset gradient from orange to purple. Brings warmth and creativity to your desk setup.",
			Stock:       18,
			Images: []string{
				"https://images.unsplash.com/photo-1702834000621-76c4a9d15868?w=800",
				"https://images.unsplash.com/photo-1615869442289-f35f5173db8d?w=800",
				"https://images.unsplash.com/photo-1645802106095-765b7e86f5bb?w=800",
			},
			Layout:  "full-size",
			Profile: "XDA",
		},
	}
}

func seedLimitedEditions() []*entity.LimitedEdition {
	return []*entity.LimitedEdition{
		{
			ID:       "le1",
			Title:    "GALAXY EDITION",
			Subtitle: "Limited to 500 units worldwide",
			Image:    "https://images.unsplash.com/photo-1721492631645-d8c12f883bb9?w=1200",
			Price:    "$199.99",
		},
		{
			ID:       "le2",
			Title:    "VAPORWAVE AESTHETIC",
			Subtitle: "Exclusive collaboration drop",
			Image:    "https://images.unsplash.com/photo-1645802106095-765b7e86f5bb?w=1200",
			Price:    "$179.99",
		},
		{
			ID:       "le3",
			Title:    "ARCTIC FROST",
			Subtitle: "Winter collection 2026",
			Image:    "https://images.unsplash.com/photo-1615869442289-f35f5173db8d?w=1200",
			Price:    "$159.99",
		},
	}
}
