// Package stats computes count/sum aggregates over a ledger snapshot. All
// functions are pure: they fold over the slice they are given and never
// touch the store, so callers recompute on demand.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/devanshm/tiffin/internal/store"
)

// Totals is the aggregate over a filtered set of orders.
type Totals struct {
	Orders  int
	Tiffins int
	Amount  decimal.Decimal
}

// Sum folds over all given orders. Empty input yields the zero aggregate.
func Sum(orders []store.Order) Totals {
	return sumWhere(orders, func(store.Order) bool { return true })
}

// ForDate sums the orders whose date equals the given YYYY-MM-DD day.
func ForDate(orders []store.Order, date string) Totals {
	return sumWhere(orders, func(o store.Order) bool { return o.Date == date })
}

// ForMonth sums the orders within the given YYYY-MM month.
func ForMonth(orders []store.Order, month string) Totals {
	prefix := month + "-"
	return sumWhere(orders, func(o store.Order) bool {
		return len(o.Date) > len(prefix) && o.Date[:len(prefix)] == prefix
	})
}

// ForWeek sums the orders in the calendar week containing now, with the
// week starting on weekStart.
func ForWeek(orders []store.Order, now time.Time, weekStart time.Weekday) Totals {
	from, to := WeekRange(now, weekStart)
	return sumWhere(orders, func(o store.Order) bool {
		return o.Date >= from && o.Date < to
	})
}

// WeekRange returns the [from, to) date bounds, as YYYY-MM-DD strings, of
// the calendar week containing now. ISO date strings compare correctly as
// plain strings.
func WeekRange(now time.Time, weekStart time.Weekday) (from, to string) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	back := (int(day.Weekday()) - int(weekStart) + 7) % 7
	start := day.AddDate(0, 0, -back)
	return start.Format("2006-01-02"), start.AddDate(0, 0, 7).Format("2006-01-02")
}

func sumWhere(orders []store.Order, keep func(store.Order) bool) Totals {
	t := Totals{Amount: decimal.Zero}
	for _, o := range orders {
		if !keep(o) {
			continue
		}
		t.Orders++
		t.Tiffins += o.NumberOfTiffins
		t.Amount = t.Amount.Add(o.TotalAmount)
	}
	return t
}
