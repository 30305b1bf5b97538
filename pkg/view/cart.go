package view

import "github.com/zone3577/Test-Web/internal/modules/cart"

type CartItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
	PriceCents  int    `json:"price_cents"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
	Quantity    int    `json:"quantity"`
	LineCents   int    `json:"line_cents"`
	LineTotal   string `json:"line_total"`
}

type CartPage struct {
	Items           []CartItem `json:"items"`
	TotalItems      int        `json:"total_items"`
	TotalPriceCents int        `json:"total_price_cents"`
	TotalPrice      string     `json:"total_price"`
	Currency        string     `json:"currency"`
}

func CartPageFrom(v cart.View) CartPage {
	page := CartPage{
		Items:           make([]CartItem, 0, len(v.Items)),
		TotalItems:      v.Summary.TotalItems,
		TotalPriceCents: v.Summary.TotalPriceCents,
		Currency:        v.Summary.Currency,
		TotalPrice:      MoneyFromCents(v.Summary.TotalPriceCents, v.Summary.Currency),
	}
	for _, it := range v.Items {
		line := it.PriceCents * it.Quantity
		page.Items = append(page.Items, CartItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			SKU:         it.SKU,
			PriceCents:  it.PriceCents,
			Price:       MoneyFromCents(it.PriceCents, it.Currency),
			Currency:    it.Currency,
			Quantity:    it.Quantity,
			LineCents:   line,
			LineTotal:   MoneyFromCents(line, it.Currency),
		})
	}
	return page
}
