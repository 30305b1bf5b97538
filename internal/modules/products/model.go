package products

import (
	"time"

	"gorm.io/datatypes"
)

// Product is the catalog entity. Prices are stored in minor units
// (satang for THB) to keep money arithmetic integral.
type Product struct {
	ID          string         `gorm:"primaryKey;type:char(36)" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string         `gorm:"type:varchar(255);not null;uniqueIndex:ux_products_slug" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	SKU         string         `gorm:"type:varchar(64);not null;uniqueIndex:ux_products_sku" json:"sku"`
	PriceCents  int            `gorm:"not null" json:"price_cents"`
	Currency    string         `gorm:"type:char(3);not null" json:"currency"`
	Available   bool           `gorm:"not null;default:true" json:"available"`
	Stock       int            `gorm:"not null;default:0" json:"stock"`
	ImageURL    string         `gorm:"type:varchar(512)" json:"image_url"`
	Metadata    datatypes.JSON `gorm:"type:json" json:"metadata,omitempty"`
	CreatedAt   time.Time      `gorm:"type:datetime(3);not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"type:datetime(3);not null" json:"updated_at"`
}

func (Product) TableName() string { return "products" }
