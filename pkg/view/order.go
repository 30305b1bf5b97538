package view

import (
	"time"

	"github.com/zone3577/Test-Web/internal/modules/orders"
)

type OrderItem struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	PriceCents    int    `json:"price_cents"`
	Quantity      int    `json:"quantity"`
	SubtotalCents int    `json:"subtotal_cents"`
	Subtotal      string `json:"subtotal"`
}

type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	Items           []OrderItem `json:"items"`
	TotalCents      int         `json:"total_cents"`
	Total           string      `json:"total"`
	Currency        string      `json:"currency"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"payment_status"`
	ShippingAddress string      `json:"shipping_address,omitempty"`
	Phone           string      `json:"phone,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func OrderFrom(o orders.Order) Order {
	out := Order{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Items:         make([]OrderItem, 0, len(o.Items)),
		TotalCents:    o.TotalCents,
		Total:         MoneyFromCents(o.TotalCents, o.Currency),
		Currency:      o.Currency,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if o.ShippingAddress != nil {
		out.ShippingAddress = *o.ShippingAddress
	}
	if o.Phone != nil {
		out.Phone = *o.Phone
	}
	if o.Notes != nil {
		out.Notes = *o.Notes
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, OrderItem{
			ProductID:     it.ProductID,
			ProductName:   it.ProductName,
			PriceCents:    it.PriceCents,
			Quantity:      it.Quantity,
			SubtotalCents: it.SubtotalCents,
			Subtotal:      MoneyFromCents(it.SubtotalCents, o.Currency),
		})
	}
	return out
}

func OrdersFrom(list []orders.Order) []Order {
	out := make([]Order, 0, len(list))
	for _, o := range list {
		out = append(out, OrderFrom(o))
	}
	return out
}

// OrderListPage is shared by the customer and admin order views: the
// filtered, sorted orders plus statistics over that same filtered set.
type OrderListPage struct {
	Items []Order      `json:"items"`
	Stats orders.Stats `json:"stats"`
}
