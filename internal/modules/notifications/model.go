package notifications

import "time"

const (
	TypeNewOrder       = "new_order"
	TypeUserRegistered = "user_registered"
	TypeLowStock       = "low_stock"
	TypeSystem         = "system"
)

// Notification is the single admin-facing notification entity. It replaces
// the split remote/local models of the previous frontend with one row type
// and one identity space.
type Notification struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Type      string    `gorm:"type:varchar(32);not null;index:ix_notifications_type" json:"type"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	OrderID   *string   `gorm:"type:char(36)" json:"order_id,omitempty"`
	UserID    *string   `gorm:"type:char(36)" json:"user_id,omitempty"`
	ProductID *string   `gorm:"type:char(36)" json:"product_id,omitempty"`
	IsRead    bool      `gorm:"not null;default:false;index:ix_notifications_is_read" json:"is_read"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null" json:"created_at"`
}

func (Notification) TableName() string { return "admin_notifications" }

// New is the input for creating a notification.
type New struct {
	Type      string
	Title     string
	Message   string
	OrderID   *string
	UserID    *string
	ProductID *string
}
