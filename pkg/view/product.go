package view

import (
	"encoding/json"
	"time"

	"github.com/zone3577/Test-Web/internal/modules/products"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	SKU         string          `json:"sku"`
	PriceCents  int             `json:"price_cents"`
	Price       string          `json:"price"`
	Currency    string          `json:"currency"`
	Available   bool            `json:"available"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func ProductFrom(p products.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		SKU:         p.SKU,
		PriceCents:  p.PriceCents,
		Price:       MoneyFromCents(p.PriceCents, p.Currency),
		Currency:    p.Currency,
		Available:   p.Available,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		Metadata:    json.RawMessage(p.Metadata),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ProductsFrom(list []products.Product) []Product {
	out := make([]Product, 0, len(list))
	for _, p := range list {
		out = append(out, ProductFrom(p))
	}
	return out
}
