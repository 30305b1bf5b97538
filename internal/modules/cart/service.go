package cart

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/zone3577/Test-Web/internal/modules/products"
	"github.com/zone3577/Test-Web/internal/shared/apperr"
)

// Summary carries the derived cart totals. It is recomputed from the lines
// on every read and never stored, so it cannot desynchronize from them.
type Summary struct {
	TotalItems      int
	TotalPriceCents int
	Currency        string
}

// Summarize folds the lines into totals: item count is the sum of
// quantities, price is the sum of price x quantity.
func Summarize(items []Item) Summary {
	var s Summary
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		s.TotalItems += it.Quantity
		s.TotalPriceCents += it.PriceCents * it.Quantity
		if s.Currency == "" {
			s.Currency = it.Currency
		}
	}
	return s
}

// Catalog is the slice of the product layer the cart needs: price, name
// and availability lookup at add time.
type Catalog interface {
	Get(ctx context.Context, id string) (products.Product, error)
}

type Service struct {
	repo    Store
	catalog Catalog
}

func NewService(store Store, catalog Catalog) *Service {
	return &Service{repo: store, catalog: catalog}
}

// View is the cart page payload: lines plus derived totals.
type View struct {
	CartID  string
	Items   []Item
	Summary Summary
}

func (s *Service) Build(ctx context.Context, userID string) (View, error) {
	c, err := s.repo.GetOrCreateOpenCart(ctx, userID)
	if err != nil {
		return View{}, apperr.Wrap(err)
	}
	items, err := s.repo.ListItems(ctx, c.ID)
	if err != nil {
		return View{}, apperr.Wrap(err)
	}
	return View{CartID: c.ID, Items: items, Summary: Summarize(items)}, nil
}

// Add inserts a line at the given quantity or increments the existing line
// for the same product.
func (s *Service) Add(ctx context.Context, userID, productID string, qty int) (View, error) {
	if qty < 1 {
		qty = 1
	}

	p, err := s.catalog.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return View{}, apperr.NotFoundErr("Product not found.")
		}
		return View{}, apperr.Wrap(err)
	}
	if !p.Available {
		return View{}, apperr.ConflictErr("Product is not available.")
	}

	c, err := s.repo.GetOrCreateOpenCart(ctx, userID)
	if err != nil {
		return View{}, apperr.Wrap(err)
	}
	if err := s.repo.AddItem(ctx, c.ID, p, qty); err != nil {
		return View{}, apperr.Wrap(err)
	}
	return s.Build(ctx, userID)
}

// UpdateQuantity sets an absolute quantity for one line. Quantities below
// one are a guarded no-op at this boundary; callers remove lines explicitly.
func (s *Service) UpdateQuantity(ctx context.Context, userID, productID string, qty int) (View, error) {
	if qty < 1 {
		return View{}, apperr.InvalidErr("Quantity must be at least 1.", map[string]string{"quantity": "must be at least 1"})
	}

	c, err := s.repo.GetOrCreateOpenCart(ctx, userID)
	if err != nil {
		return View{}, apperr.Wrap(err)
	}
	affected, err := s.repo.SetItemQty(ctx, c.ID, productID, qty)
	if err != nil {
		return View{}, apperr.Wrap(err)
	}
	if affected == 0 {
		return View{}, apperr.NotFoundErr("Item is not in the cart.")
	}
	return s.Build(ctx, userID)
}

func (s *Service) Remove(ctx context.Context, userID, productID string) (View, error) {
	c, err := s.repo.GetOrCreateOpenCart(ctx, userID)
	if err != nil {
		return View{}, apperr.Wrap(err)
	}
	if err := s.repo.RemoveItem(ctx, c.ID, productID); err != nil {
		return View{}, apperr.Wrap(err)
	}
	return s.Build(ctx, userID)
}

func (s *Service) Clear(ctx context.Context, userID string) error {
	c, err := s.repo.GetOrCreateOpenCart(ctx, userID)
	if err != nil {
		return apperr.Wrap(err)
	}
	if err := s.repo.Clear(ctx, c.ID); err != nil {
		return apperr.Wrap(err)
	}
	return nil
}
