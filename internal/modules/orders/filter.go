package orders

import (
	"sort"
	"strings"
	"time"
)

// Date range buckets. "today" means the same calendar day, "week" the last
// seven days, "month" the last thirty, "year" the same calendar year.
const (
	RangeAll   = "all"
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
)

const (
	SortDateDesc   = "date_desc"
	SortDateAsc    = "date_asc"
	SortAmountDesc = "amount_desc"
	SortAmountAsc  = "amount_asc"
)

type FilterParams struct {
	DateRange string // RangeAll when empty
	Status    string // equality filter; empty or "all" matches everything
	Search    string // free text, see matchesSearch
	SortBy    string // SortDateDesc when empty
}

// Filter applies the three filters conjunctively and returns the matching
// orders in their incoming order. Items must be preloaded for the search to
// see product names.
func Filter(all []Order, now time.Time, p FilterParams) []Order {
	search := strings.ToLower(strings.TrimSpace(p.Search))
	status := strings.TrimSpace(p.Status)

	out := make([]Order, 0, len(all))
	for _, o := range all {
		if !inDateRange(o.CreatedAt, now, p.DateRange) {
			continue
		}
		if status != "" && status != "all" && o.Status != status {
			continue
		}
		if search != "" && !matchesSearch(o, search, p.Search) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func inDateRange(created, now time.Time, rng string) bool {
	switch rng {
	case RangeToday:
		y1, m1, d1 := created.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case RangeWeek:
		return !created.Before(now.Add(-7 * 24 * time.Hour))
	case RangeMonth:
		return !created.Before(now.Add(-30 * 24 * time.Hour))
	case RangeYear:
		return created.Year() == now.Year()
	default:
		return true
	}
}

// matchesSearch checks customer name, customer email, the order id
// substring, and every line item's product name. Text fields compare
// case-insensitively; the id compares on the raw term.
func matchesSearch(o Order, lowered, raw string) bool {
	if strings.Contains(strings.ToLower(o.CustomerEmail), lowered) {
		return true
	}
	if strings.Contains(strings.ToLower(o.CustomerName), lowered) {
		return true
	}
	if strings.Contains(o.ID, raw) {
		return true
	}
	for _, it := range o.Items {
		if strings.Contains(strings.ToLower(it.ProductName), lowered) {
			return true
		}
	}
	return false
}

// SortOrders sorts in place. The sort is stable so equal keys keep their
// incoming order.
func SortOrders(list []Order, sortBy string) {
	switch sortBy {
	case SortDateAsc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	case SortAmountDesc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].TotalCents > list[j].TotalCents })
	case SortAmountAsc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].TotalCents < list[j].TotalCents })
	default: // SortDateDesc
		sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	}
}

// Stats are computed over the currently filtered set only; revenue and
// average come from its delivered subset. Changing a filter changes the
// reported revenue, by design.
type Stats struct {
	TotalOrders       int `json:"total_orders"`
	DeliveredOrders   int `json:"delivered_orders"`
	CancelledOrders   int `json:"cancelled_orders"`
	RevenueCents      int `json:"revenue_cents"`
	AverageOrderCents int `json:"average_order_cents"`
}

func ComputeStats(filtered []Order) Stats {
	st := Stats{TotalOrders: len(filtered)}
	for _, o := range filtered {
		switch o.Status {
		case StatusDelivered:
			st.DeliveredOrders++
			st.RevenueCents += o.TotalCents
		case StatusCancelled:
			st.CancelledOrders++
		}
	}
	if st.DeliveredOrders > 0 {
		st.AverageOrderCents = st.RevenueCents / st.DeliveredOrders
	}
	return st
}
