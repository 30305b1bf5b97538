package view

import "github.com/zone3577/Test-Web/internal/modules/users"

// Dashboard is the admin landing payload: headline counts assembled from
// the individual modules in one round trip.
type Dashboard struct {
	Products              int64            `json:"products"`
	Users                 int64            `json:"users"`
	BannedUsers           int64            `json:"banned_users"`
	SuspendedUsers        int64            `json:"suspended_users"`
	TotalOrders           int64            `json:"total_orders"`
	OrdersByStatus        map[string]int64 `json:"orders_by_status"`
	DeliveredRevenueCents int64            `json:"delivered_revenue_cents"`
	UnreadNotifications   int64            `json:"unread_notifications"`
}

// DashboardFrom derives the view from the module aggregates. The order
// total is the sum over the per-status counts, so the headline number and
// the breakdown cannot disagree.
func DashboardFrom(productCount int64, userCounts users.Counts, ordersByStatus map[string]int64, deliveredRevenueCents, unread int64) Dashboard {
	var totalOrders int64
	for _, n := range ordersByStatus {
		totalOrders += n
	}
	return Dashboard{
		Products:              productCount,
		Users:                 userCounts.Total,
		BannedUsers:           userCounts.Banned,
		SuspendedUsers:        userCounts.Suspended,
		TotalOrders:           totalOrders,
		OrdersByStatus:        ordersByStatus,
		DeliveredRevenueCents: deliveredRevenueCents,
		UnreadNotifications:   unread,
	}
}
