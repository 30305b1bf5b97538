package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zone3577/Test-Web/internal/modules/products"
)

// Store abstracts cart persistence so the service logic can be exercised
// against an in-memory implementation in tests.
type Store interface {
	GetOrCreateOpenCart(ctx context.Context, userID string) (Cart, error)
	ListItems(ctx context.Context, cartID string) ([]Item, error)
	AddItem(ctx context.Context, cartID string, p products.Product, qty int) error
	SetItemQty(ctx context.Context, cartID, productID string, qty int) (int64, error)
	RemoveItem(ctx context.Context, cartID, productID string) error
	Clear(ctx context.Context, cartID string) error
}

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) GetOrCreateOpenCart(ctx context.Context, userID string) (Cart, error) {
	var c Cart
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, "open").
		Order("updated_at DESC").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = Cart{
			ID:        uuid.NewString(),
			UserID:    userID,
			Status:    "open",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		err = r.db.WithContext(ctx).Create(&c).Error
	}
	return c, err
}

func (r *Repo) ListItems(ctx context.Context, cartID string) ([]Item, error) {
	var items []Item
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&items, "cart_id = ?", cartID).Error
	return items, err
}

// AddItem merges into an existing line for the same product or inserts a
// new one. Runs in a transaction so two rapid adds cannot create twin lines.
func (r *Repo) AddItem(ctx context.Context, cartID string, p products.Product, qty int) error {
	if qty < 1 {
		qty = 1
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Item
		err := tx.Where("cart_id = ? AND product_id = ?", cartID, p.ID).First(&existing).Error
		switch {
		case err == nil:
			return tx.Model(&Item{}).
				Where("id = ?", existing.ID).
				Updates(map[string]any{
					"quantity":   gorm.Expr("quantity + ?", qty),
					"updated_at": time.Now(),
				}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			item := Item{
				ID:          uuid.NewString(),
				CartID:      cartID,
				ProductID:   p.ID,
				ProductName: p.Name,
				SKU:         p.SKU,
				PriceCents:  p.PriceCents,
				Currency:    p.Currency,
				Quantity:    qty,
				CreatedAt:   time.Now(),
				UpdatedAt:   time.Now(),
			}
			return tx.Create(&item).Error
		default:
			return err
		}
	})
}

// SetItemQty sets an absolute quantity. Quantities below one are rejected
// upstream; removal goes through RemoveItem.
func (r *Repo) SetItemQty(ctx context.Context, cartID, productID string, qty int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Item{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Updates(map[string]any{
			"quantity":   qty,
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (r *Repo) RemoveItem(ctx context.Context, cartID, productID string) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&Item{}).Error
}

func (r *Repo) Clear(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&Item{}).Error
}
