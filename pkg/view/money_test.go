package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyFromCents(t *testing.T) {
	assert.Equal(t, "฿100.00", MoneyFromCents(10000, "THB"))
	assert.Equal(t, "฿0.50", MoneyFromCents(50, "THB"))
	assert.Equal(t, "€12.34", MoneyFromCents(1234, "EUR"))
	assert.Equal(t, "$0.00", MoneyFromCents(0, "USD"))
	assert.Equal(t, "SEK 9.99", MoneyFromCents(999, "SEK"))
}
