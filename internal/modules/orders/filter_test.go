package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkOrder(id string, status string, totalCents int, created time.Time) Order {
	return Order{
		ID:            id,
		CustomerName:  "Somchai Prasert",
		CustomerEmail: "somchai@example.com",
		Status:        status,
		TotalCents:    totalCents,
		Currency:      "THB",
		CreatedAt:     created,
	}
}

func TestFilterStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	all := []Order{
		mkOrder("o1", StatusDelivered, 5000, now),
		mkOrder("o2", StatusPending, 3000, now),
		mkOrder("o3", StatusDelivered, 7000, now),
	}

	got := Filter(all, now, FilterParams{Status: StatusDelivered})
	require.Len(t, got, 2)
	assert.Equal(t, "o1", got[0].ID)
	assert.Equal(t, "o3", got[1].ID)

	// "all" and empty behave identically.
	assert.Len(t, Filter(all, now, FilterParams{Status: "all"}), 3)
	assert.Len(t, Filter(all, now, FilterParams{}), 3)
}

func TestFilterDateRanges(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	all := []Order{
		mkOrder("today", StatusPending, 100, now.Add(-2*time.Hour)),
		mkOrder("thisweek", StatusPending, 100, now.Add(-3*24*time.Hour)),
		mkOrder("thismonth", StatusPending, 100, now.Add(-20*24*time.Hour)),
		mkOrder("thisyear", StatusPending, 100, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)),
		mkOrder("lastyear", StatusPending, 100, time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)),
	}

	cases := []struct {
		rng  string
		want []string
	}{
		{RangeToday, []string{"today"}},
		{RangeWeek, []string{"today", "thisweek"}},
		{RangeMonth, []string{"today", "thisweek", "thismonth"}},
		{RangeYear, []string{"today", "thisweek", "thismonth", "thisyear"}},
		{RangeAll, []string{"today", "thisweek", "thismonth", "thisyear", "lastyear"}},
		{"", []string{"today", "thisweek", "thismonth", "thisyear", "lastyear"}},
	}
	for _, tc := range cases {
		t.Run("range_"+tc.rng, func(t *testing.T) {
			got := Filter(all, now, FilterParams{DateRange: tc.rng})
			ids := make([]string, 0, len(got))
			for _, o := range got {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestFilterSearch(t *testing.T) {
	now := time.Now()

	o1 := mkOrder("abc-123", StatusPending, 100, now)
	o1.Items = []Item{{ProductName: "Green Tea Set"}}

	o2 := mkOrder("def-456", StatusPending, 100, now)
	o2.CustomerName = "Nok Arunee"
	o2.CustomerEmail = "nok@shop.test"
	o2.Items = []Item{{ProductName: "Ceramic Mug"}}

	all := []Order{o1, o2}

	// Customer name, case-insensitive.
	got := Filter(all, now, FilterParams{Search: "NOK"})
	require.Len(t, got, 1)
	assert.Equal(t, "def-456", got[0].ID)

	// Email.
	got = Filter(all, now, FilterParams{Search: "somchai@"})
	require.Len(t, got, 1)
	assert.Equal(t, "abc-123", got[0].ID)

	// Order id substring.
	got = Filter(all, now, FilterParams{Search: "def-4"})
	require.Len(t, got, 1)
	assert.Equal(t, "def-456", got[0].ID)

	// Line item product name.
	got = Filter(all, now, FilterParams{Search: "green tea"})
	require.Len(t, got, 1)
	assert.Equal(t, "abc-123", got[0].ID)

	// No match.
	assert.Empty(t, Filter(all, now, FilterParams{Search: "does-not-exist"}))
}

func TestFiltersAreConjunctive(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	match := mkOrder("match", StatusDelivered, 100, now.Add(-time.Hour))
	wrongStatus := mkOrder("wrong-status", StatusPending, 100, now.Add(-time.Hour))
	wrongDay := mkOrder("wrong-day", StatusDelivered, 100, now.Add(-48*time.Hour))

	got := Filter([]Order{match, wrongStatus, wrongDay}, now, FilterParams{
		DateRange: RangeToday,
		Status:    StatusDelivered,
		Search:    "somchai",
	})
	require.Len(t, got, 1)
	assert.Equal(t, "match", got[0].ID)
}

func TestSortOrders(t *testing.T) {
	now := time.Now()
	a := mkOrder("a", StatusPending, 300, now.Add(-3*time.Hour))
	b := mkOrder("b", StatusPending, 100, now.Add(-1*time.Hour))
	c := mkOrder("c", StatusPending, 200, now.Add(-2*time.Hour))

	ids := func(list []Order) []string {
		out := make([]string, 0, len(list))
		for _, o := range list {
			out = append(out, o.ID)
		}
		return out
	}

	list := []Order{a, b, c}
	SortOrders(list, SortDateDesc)
	assert.Equal(t, []string{"b", "c", "a"}, ids(list))

	list = []Order{a, b, c}
	SortOrders(list, SortDateAsc)
	assert.Equal(t, []string{"a", "c", "b"}, ids(list))

	list = []Order{a, b, c}
	SortOrders(list, SortAmountDesc)
	assert.Equal(t, []string{"a", "c", "b"}, ids(list))

	list = []Order{a, b, c}
	SortOrders(list, SortAmountAsc)
	assert.Equal(t, []string{"b", "c", "a"}, ids(list))

	// Unknown key falls back to newest first.
	list = []Order{a, b, c}
	SortOrders(list, "bogus")
	assert.Equal(t, []string{"b", "c", "a"}, ids(list))
}

func TestSortOrdersStable(t *testing.T) {
	now := time.Now()
	x := mkOrder("x", StatusPending, 500, now)
	y := mkOrder("y", StatusPending, 500, now)
	z := mkOrder("z", StatusPending, 500, now)

	list := []Order{x, y, z}
	SortOrders(list, SortAmountDesc)
	assert.Equal(t, "x", list[0].ID)
	assert.Equal(t, "y", list[1].ID)
	assert.Equal(t, "z", list[2].ID)
}

func TestComputeStatsRevenueFromDeliveredOnly(t *testing.T) {
	now := time.Now()
	filtered := []Order{
		mkOrder("d1", StatusDelivered, 5000, now),
		mkOrder("d2", StatusDelivered, 5000, now),
		mkOrder("d3", StatusDelivered, 3000, now),
		mkOrder("p1", StatusPending, 9999, now),
		mkOrder("c1", StatusCancelled, 8888, now),
	}

	st := ComputeStats(filtered)
	assert.Equal(t, 5, st.TotalOrders)
	assert.Equal(t, 3, st.DeliveredOrders)
	assert.Equal(t, 1, st.CancelledOrders)
	assert.Equal(t, 13000, st.RevenueCents)
	assert.Equal(t, 4333, st.AverageOrderCents)
}

func TestComputeStatsEmpty(t *testing.T) {
	st := ComputeStats(nil)
	assert.Zero(t, st.TotalOrders)
	assert.Zero(t, st.RevenueCents)
	assert.Zero(t, st.AverageOrderCents)
}

// Stats follow the filtered set: narrowing the filter changes the revenue.
func TestStatsFollowFilter(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	all := []Order{
		mkOrder("recent", StatusDelivered, 5000, now.Add(-time.Hour)),
		mkOrder("old", StatusDelivered, 7000, now.Add(-40*24*time.Hour)),
	}

	full := ComputeStats(Filter(all, now, FilterParams{}))
	assert.Equal(t, 12000, full.RevenueCents)

	todayOnly := ComputeStats(Filter(all, now, FilterParams{DateRange: RangeToday}))
	assert.Equal(t, 5000, todayOnly.RevenueCents)
	assert.Equal(t, 1, todayOnly.TotalOrders)
}
