package products

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/zone3577/Test-Web/internal/modules/notifications"
	"github.com/zone3577/Test-Web/internal/shared/apperr"
	"github.com/zone3577/Test-Web/internal/shared/slug"
	"github.com/zone3577/Test-Web/internal/storage"
)

// Notifier is the slice of the notification service this module needs.
type Notifier interface {
	Notify(ctx context.Context, in notifications.New) (notifications.Notification, error)
}

type Service struct {
	repo     *Repo
	store    storage.Storage
	notifier Notifier
	lowStock int
}

func NewService(db *gorm.DB, store storage.Storage, notifier Notifier, lowStockThreshold int) *Service {
	if lowStockThreshold < 1 {
		lowStockThreshold = 5
	}
	return &Service{
		repo:     NewRepo(db),
		store:    store,
		notifier: notifier,
		lowStock: lowStockThreshold,
	}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return items, nil
}

func (s *Service) ListAvailable(ctx context.Context) ([]Product, error) {
	items, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Product{}, apperr.NotFoundErr("Product not found.")
		}
		return Product{}, apperr.Wrap(err)
	}
	return p, nil
}

type CreateForm struct {
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

func (s *Service) Create(ctx context.Context, in CreateForm) (Product, error) {
	sl := strings.TrimSpace(in.Slug)
	if sl == "" {
		sl = slug.FromName(in.Name)
	}

	p, err := s.repo.Create(ctx, CreateInput{
		Name:        strings.TrimSpace(in.Name),
		Slug:        sl,
		Description: in.Description,
		SKU:         strings.TrimSpace(in.SKU),
		PriceCents:  in.PriceCents,
		Currency:    strings.ToUpper(strings.TrimSpace(in.Currency)),
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		Metadata:    in.Metadata,
	})
	if err != nil {
		if IsDuplicateKey(err) {
			return Product{}, apperr.ConflictErr("A product with this slug or SKU already exists.")
		}
		return Product{}, apperr.Wrap(err)
	}
	return p, nil
}

type UpdateForm struct {
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

// Update overwrites the editable fields. Crossing below the low-stock
// threshold raises an admin notification.
func (s *Service) Update(ctx context.Context, id string, in UpdateForm) (Product, error) {
	before, err := s.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}

	sl := strings.TrimSpace(in.Slug)
	if sl == "" {
		sl = slug.FromName(in.Name)
	}

	err = s.repo.Update(ctx, id, UpdateInput{
		Name:        strings.TrimSpace(in.Name),
		Slug:        sl,
		Description: in.Description,
		SKU:         strings.TrimSpace(in.SKU),
		PriceCents:  in.PriceCents,
		Currency:    strings.ToUpper(strings.TrimSpace(in.Currency)),
		Available:   in.Available,
		Stock:       in.Stock,
		Metadata:    in.Metadata,
	})
	if err != nil {
		if IsDuplicateKey(err) {
			return Product{}, apperr.ConflictErr("A product with this slug or SKU already exists.")
		}
		return Product{}, apperr.Wrap(err)
	}

	after, err := s.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}

	if before.Stock >= s.lowStock && after.Stock < s.lowStock {
		_, _ = s.notifier.Notify(ctx, notifications.New{
			Type:      notifications.TypeLowStock,
			Title:     "Low stock",
			Message:   fmt.Sprintf("%s is down to %d in stock", after.Name, after.Stock),
			ProductID: &after.ID,
		})
	}

	return after, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Wrap(err)
	}
	return nil
}

// UploadImage stores the file and points the product at the resulting URL.
func (s *Service) UploadImage(ctx context.Context, id string, r io.Reader, in storage.PutInput) (Product, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return Product{}, err
	}

	res, err := s.store.Put(ctx, r, in)
	if err != nil {
		return Product{}, apperr.Wrap(err)
	}
	if err := s.repo.SetImageURL(ctx, id, res.URL); err != nil {
		return Product{}, apperr.Wrap(err)
	}
	return s.Get(ctx, id)
}
