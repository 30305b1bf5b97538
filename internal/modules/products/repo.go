package products

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// List returns every product, newest change first.
func (r *Repo) List(ctx context.Context) ([]Product, error) {
	var items []Product
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Find(&items).Error
	return items, err
}

// ListAvailable is the storefront view: available products only.
func (r *Repo) ListAvailable(ctx context.Context) ([]Product, error) {
	var items []Product
	err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Order("updated_at DESC").
		Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return p, err
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).First(&p, "slug = ?", slug).Error
	return p, err
}

type CreateInput struct {
	Name        string
	Slug        string
	Description string
	SKU         string
	PriceCents  int
	Currency    string
	Stock       int
	ImageURL    string
	Metadata    datatypes.JSON
}

func (r *Repo) Create(ctx context.Context, in CreateInput) (Product, error) {
	p := Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		SKU:         in.SKU,
		PriceCents:  in.PriceCents,
		Currency:    in.Currency,
		Available:   true,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		Metadata:    in.Metadata,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return Product{}, err
	}
	return p, nil
}

type UpdateInput struct {
	Name        string
	Slug        string
	Description string
	SKU         string
	PriceCents  int
	Currency    string
	Available   bool
	Stock       int
	Metadata    datatypes.JSON
}

func (r *Repo) Update(ctx context.Context, id string, in UpdateInput) error {
	return r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":        in.Name,
			"slug":        in.Slug,
			"description": in.Description,
			"sku":         in.SKU,
			"price_cents": in.PriceCents,
			"currency":    in.Currency,
			"available":   in.Available,
			"stock":       in.Stock,
			"metadata":    in.Metadata,
			"updated_at":  time.Now(),
		}).Error
}

func (r *Repo) SetImageURL(ctx context.Context, id, url string) error {
	return r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"image_url":  url,
			"updated_at": time.Now(),
		}).Error
}

func (r *Repo) SetAvailability(ctx context.Context, id string, available bool) error {
	return r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"available":  available,
			"updated_at": time.Now(),
		}).Error
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Product{}, "id = ?", id).Error
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Product{}).Count(&n).Error
	return n, err
}

func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}
