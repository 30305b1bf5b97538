package notifications

import (
	"context"

	"gorm.io/gorm"
)

// Store abstracts notification persistence so the service logic can be
// exercised against an in-memory implementation in tests.
type Store interface {
	Insert(ctx context.Context, n Notification) error
	List(ctx context.Context, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id string) (int64, error)
	MarkAllRead(ctx context.Context) error
	CountUnread(ctx context.Context) (int64, error)
}

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Insert(ctx context.Context, n Notification) error {
	return r.db.WithContext(ctx).Create(&n).Error
}

func (r *Repo) List(ctx context.Context, limit int) ([]Notification, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	var out []Notification
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *Repo) MarkRead(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ? AND is_read = ?", id, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *Repo) MarkAllRead(ctx context.Context) error {
	return r.db.WithContext(ctx).Model(&Notification{}).
		Where("is_read = ?", false).
		Update("is_read", true).Error
}

// CountUnread is a live filter over the table, never a maintained counter,
// so it cannot drift from the rows.
func (r *Repo) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Notification{}).
		Where("is_read = ?", false).
		Count(&n).Error
	return n, err
}
