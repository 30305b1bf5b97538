package cart

import "time"

type Cart struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	UserID    string    `gorm:"type:char(36);not null;index:ix_carts_user_id"`
	Status    string    `gorm:"type:varchar(16);not null;default:open"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Cart) TableName() string { return "carts" }

// Item denormalizes name/sku/price so the cart renders without joining the
// catalog and survives later product edits unchanged.
type Item struct {
	ID          string    `gorm:"primaryKey;type:char(36)"`
	CartID      string    `gorm:"type:char(36);not null;uniqueIndex:ux_cart_items_cart_product"`
	ProductID   string    `gorm:"type:char(36);not null;uniqueIndex:ux_cart_items_cart_product"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	SKU         string    `gorm:"type:varchar(64);not null"`
	PriceCents  int       `gorm:"not null"`
	Currency    string    `gorm:"type:char(3);not null"`
	Quantity    int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt   time.Time `gorm:"type:datetime(3);not null"`
}

func (Item) TableName() string { return "cart_items" }
