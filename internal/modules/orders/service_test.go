package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zone3577/Test-Web/internal/modules/cart"
)

func TestLinesFromCart(t *testing.T) {
	items, currency, err := LinesFromCart([]cart.Item{
		{ProductID: "p1", ProductName: "Green Tea Set", PriceCents: 5000, Currency: "THB", Quantity: 2},
		{ProductID: "p2", ProductName: "Ceramic Mug", PriceCents: 3000, Currency: "THB", Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "THB", currency)
	require.Len(t, items, 2)

	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 10000, items[0].SubtotalCents)
	assert.Equal(t, 3000, items[1].SubtotalCents)
	assert.NotEmpty(t, items[0].ID)

	assert.Equal(t, 13000, TotalCents(items))
}

func TestLinesFromCartEmpty(t *testing.T) {
	_, _, err := LinesFromCart(nil)
	assert.ErrorIs(t, err, ErrCartEmpty)

	// Lines with non-positive quantity are dropped; an all-dropped cart is
	// still empty.
	_, _, err = LinesFromCart([]cart.Item{
		{ProductID: "p1", PriceCents: 100, Currency: "THB", Quantity: 0},
	})
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestLinesFromCartCurrencyMismatch(t *testing.T) {
	_, _, err := LinesFromCart([]cart.Item{
		{ProductID: "p1", PriceCents: 100, Currency: "THB", Quantity: 1},
		{ProductID: "p2", PriceCents: 100, Currency: "USD", Quantity: 1},
	})
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "130.00 THB", formatAmount(13000, "THB"))
	assert.Equal(t, "0.50 THB", formatAmount(50, "THB"))
}
