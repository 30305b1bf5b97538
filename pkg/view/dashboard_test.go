package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zone3577/Test-Web/internal/modules/users"
)

func TestDashboardFrom(t *testing.T) {
	d := DashboardFrom(
		12,
		users.Counts{Total: 40, Banned: 2, Suspended: 1},
		map[string]int64{
			"pending":   3,
			"delivered": 5,
			"cancelled": 1,
		},
		13000,
		4,
	)

	assert.Equal(t, int64(12), d.Products)
	assert.Equal(t, int64(40), d.Users)
	assert.Equal(t, int64(2), d.BannedUsers)
	assert.Equal(t, int64(1), d.SuspendedUsers)
	assert.Equal(t, int64(9), d.TotalOrders, "order total is the sum of the per-status counts")
	assert.Equal(t, int64(13000), d.DeliveredRevenueCents)
	assert.Equal(t, int64(4), d.UnreadNotifications)
}

func TestDashboardFromNoOrders(t *testing.T) {
	d := DashboardFrom(0, users.Counts{}, nil, 0, 0)
	assert.Zero(t, d.TotalOrders)
	assert.Zero(t, d.DeliveredRevenueCents)
}
