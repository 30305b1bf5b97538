package orders

import (
	"context"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// ListByUser loads a user's orders with items, newest first. Filtering and
// sorting happen in memory on the loaded set (see filter.go).
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	var out []Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// ListAll is the admin view over the whole table.
func (r *Repo) ListAll(ctx context.Context) ([]Order, error) {
	var out []Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *Repo) Get(ctx context.Context, id string) (Order, error) {
	var o Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&o, "id = ?", id).Error
	return o, err
}

func (r *Repo) ListEvents(ctx context.Context, orderID string) ([]Event, error) {
	var ev []Event
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&ev, "order_id = ?", orderID).Error
	return ev, err
}

// DeliveredRevenueCents sums order totals over delivered orders only;
// pending and cancelled rows never count as revenue.
func (r *Repo) DeliveredRevenueCents(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Order{}).
		Where("status = ?", StatusDelivered).
		Select("COALESCE(SUM(total_cents), 0)").
		Scan(&n).Error
	return n, err
}

func (r *Repo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&Order{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, rw := range rows {
		out[rw.Status] = rw.N
	}
	return out, nil
}
