package cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/zone3577/Test-Web/internal/modules/products"
	"github.com/zone3577/Test-Web/internal/shared/apperr"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]Item{
		{ProductID: "p1", PriceCents: 10000, Currency: "THB", Quantity: 2},
		{ProductID: "p2", PriceCents: 3000, Currency: "THB", Quantity: 1},
	})
	assert.Equal(t, 3, s.TotalItems)
	assert.Equal(t, 23000, s.TotalPriceCents)
	assert.Equal(t, "THB", s.Currency)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalItems)
	assert.Zero(t, s.TotalPriceCents)
	assert.Empty(t, s.Currency)
}

func TestSummarizeSkipsNonPositiveQuantities(t *testing.T) {
	s := Summarize([]Item{
		{ProductID: "p1", PriceCents: 100, Currency: "THB", Quantity: 0},
		{ProductID: "p2", PriceCents: 200, Currency: "THB", Quantity: -1},
		{ProductID: "p3", PriceCents: 300, Currency: "THB", Quantity: 1},
	})
	assert.Equal(t, 1, s.TotalItems)
	assert.Equal(t, 300, s.TotalPriceCents)
}

// memStore is an in-memory Store for exercising the service logic.
type memStore struct {
	cart       Cart
	items      []Item
	setQtyCall int
}

func (m *memStore) GetOrCreateOpenCart(_ context.Context, userID string) (Cart, error) {
	if m.cart.ID == "" {
		m.cart = Cart{ID: "cart-1", UserID: userID, Status: "open"}
	}
	return m.cart, nil
}

func (m *memStore) ListItems(_ context.Context, cartID string) ([]Item, error) {
	out := make([]Item, 0, len(m.items))
	for _, it := range m.items {
		if it.CartID == cartID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memStore) AddItem(_ context.Context, cartID string, p products.Product, qty int) error {
	for i := range m.items {
		if m.items[i].CartID == cartID && m.items[i].ProductID == p.ID {
			m.items[i].Quantity += qty
			return nil
		}
	}
	m.items = append(m.items, Item{
		ID:          "item-" + p.ID,
		CartID:      cartID,
		ProductID:   p.ID,
		ProductName: p.Name,
		SKU:         p.SKU,
		PriceCents:  p.PriceCents,
		Currency:    p.Currency,
		Quantity:    qty,
		CreatedAt:   time.Now(),
	})
	return nil
}

func (m *memStore) SetItemQty(_ context.Context, cartID, productID string, qty int) (int64, error) {
	m.setQtyCall++
	for i := range m.items {
		if m.items[i].CartID == cartID && m.items[i].ProductID == productID {
			m.items[i].Quantity = qty
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) RemoveItem(_ context.Context, cartID, productID string) error {
	out := m.items[:0]
	for _, it := range m.items {
		if !(it.CartID == cartID && it.ProductID == productID) {
			out = append(out, it)
		}
	}
	m.items = out
	return nil
}

func (m *memStore) Clear(_ context.Context, cartID string) error {
	out := m.items[:0]
	for _, it := range m.items {
		if it.CartID != cartID {
			out = append(out, it)
		}
	}
	m.items = out
	return nil
}

// memCatalog is an in-memory Catalog.
type memCatalog map[string]products.Product

func (m memCatalog) Get(_ context.Context, id string) (products.Product, error) {
	p, ok := m[id]
	if !ok {
		return products.Product{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func testCatalog() memCatalog {
	return memCatalog{
		"p1": {ID: "p1", Name: "Green Tea Set", SKU: "GTS-1", PriceCents: 10000, Currency: "THB", Available: true},
		"p2": {ID: "p2", Name: "Retired Mug", SKU: "MUG-9", PriceCents: 3000, Currency: "THB", Available: false},
	}
}

// Adding the same product twice merges into one line with quantity 2 and
// total 2 x price.
func TestAddSameProductTwiceMergesLine(t *testing.T) {
	svc := NewService(&memStore{}, testCatalog())
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", "p1", 1)
	require.NoError(t, err)
	v, err := svc.Add(ctx, "u1", "p1", 1)
	require.NoError(t, err)

	require.Len(t, v.Items, 1)
	assert.Equal(t, 2, v.Items[0].Quantity)
	assert.Equal(t, 2, v.Summary.TotalItems)
	assert.Equal(t, 20000, v.Summary.TotalPriceCents)
}

func TestAddUnknownProduct(t *testing.T) {
	svc := NewService(&memStore{}, testCatalog())

	_, err := svc.Add(context.Background(), "u1", "missing", 1)
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)
}

func TestAddUnavailableProduct(t *testing.T) {
	svc := NewService(&memStore{}, testCatalog())

	_, err := svc.Add(context.Background(), "u1", "p2", 1)
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Conflict, ae.Kind)
}

// A quantity below one is rejected at the boundary and never reaches the
// store, so the line keeps its old quantity.
func TestUpdateQuantityBelowOneIsGuarded(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, testCatalog())
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", "p1", 2)
	require.NoError(t, err)

	for _, qty := range []int{0, -1} {
		_, err := svc.UpdateQuantity(ctx, "u1", "p1", qty)
		require.Error(t, err)
		ae, ok := apperr.As(err)
		require.True(t, ok)
		assert.Equal(t, apperr.Invalid, ae.Kind)
		assert.Contains(t, ae.Fields, "quantity")
	}
	assert.Zero(t, store.setQtyCall, "guarded update must not touch the store")

	v, err := svc.Build(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, v.Items, 1)
	assert.Equal(t, 2, v.Items[0].Quantity)
	assert.Equal(t, 20000, v.Summary.TotalPriceCents)
}

func TestUpdateQuantityMissingLine(t *testing.T) {
	svc := NewService(&memStore{}, testCatalog())

	_, err := svc.UpdateQuantity(context.Background(), "u1", "p1", 3)
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)
}

func TestRemoveAndClear(t *testing.T) {
	svc := NewService(&memStore{}, testCatalog())
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", "p1", 1)
	require.NoError(t, err)

	v, err := svc.Remove(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Empty(t, v.Items)
	assert.Zero(t, v.Summary.TotalPriceCents)

	_, err = svc.Add(ctx, "u1", "p1", 1)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "u1"))

	v, err = svc.Build(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, v.Items)
}
