package orders

import "time"

// Canonical status vocabulary. The lifecycle runs
// pending -> confirmed -> processing -> shipped -> delivered, with
// cancelled reachable from any non-terminal state.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

type Order struct {
	ID     string `gorm:"primaryKey;type:char(36)" json:"id"`
	UserID string `gorm:"type:char(36);not null;index:ix_orders_user_id" json:"user_id"`

	// Denormalized at creation time so order history reads and the admin
	// search never join the users table.
	CustomerName  string `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail string `gorm:"type:varchar(255);not null" json:"customer_email"`

	Items []Item `gorm:"foreignKey:OrderID" json:"items"`

	TotalCents    int    `gorm:"not null" json:"total_cents"`
	Currency      string `gorm:"type:char(3);not null" json:"currency"`
	Status        string `gorm:"type:varchar(16);not null;index:ix_orders_status" json:"status"`
	PaymentStatus string `gorm:"type:varchar(16);not null;default:pending" json:"payment_status"`

	ShippingAddress *string    `gorm:"type:text" json:"shipping_address,omitempty"`
	Phone           *string    `gorm:"type:varchar(32)" json:"phone,omitempty"`
	Notes           *string    `gorm:"type:text" json:"notes,omitempty"`
	PaidAt          *time.Time `gorm:"type:datetime(3)" json:"paid_at,omitempty"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

type Item struct {
	ID            string    `gorm:"primaryKey;type:char(36)" json:"id"`
	OrderID       string    `gorm:"type:char(36);not null;index:ix_order_items_order_id" json:"order_id"`
	ProductID     string    `gorm:"type:char(36);not null" json:"product_id"`
	ProductName   string    `gorm:"type:varchar(255);not null" json:"product_name"`
	PriceCents    int       `gorm:"not null" json:"price_cents"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	SubtotalCents int       `gorm:"not null" json:"subtotal_cents"`
	CreatedAt     time.Time `gorm:"type:datetime(3);not null" json:"created_at"`
}

func (Item) TableName() string { return "order_items" }

// Event is the audit row written on every status transition.
type Event struct {
	ID         string    `gorm:"primaryKey;type:char(36)"`
	OrderID    string    `gorm:"type:char(36);not null;index:ix_order_events_order_id"`
	ActorID    string    `gorm:"type:char(36);not null"`
	FromStatus string    `gorm:"type:varchar(16);not null"`
	ToStatus   string    `gorm:"type:varchar(16);not null"`
	Note       *string   `gorm:"type:varchar(255)"`
	CreatedAt  time.Time `gorm:"type:datetime(3);not null"`
}

func (Event) TableName() string { return "order_events" }

var allStatuses = map[string]bool{
	StatusPending:    true,
	StatusConfirmed:  true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

func ValidStatus(s string) bool { return allStatuses[s] }

// Terminal statuses accept no further transitions.
func Terminal(s string) bool { return s == StatusDelivered || s == StatusCancelled }

// ValidateTransition enforces the workflow rules: the target must be a known
// status, the order must not already be terminal, and the transition must
// change something.
func ValidateTransition(from, to string) error {
	if !ValidStatus(to) {
		return ErrUnknownStatus
	}
	if Terminal(from) {
		return ErrInvalidTransition
	}
	if from == to {
		return ErrInvalidTransition
	}
	return nil
}
