package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/devanshm/tiffin/internal/store"
)

func order(date string, tiffins int, total int64) store.Order {
	return store.Order{
		Date:            date,
		NumberOfTiffins: tiffins,
		TotalAmount:     decimal.NewFromInt(total),
	}
}

func TestSumEmpty(t *testing.T) {
	got := Sum(nil)
	assert.Equal(t, 0, got.Orders)
	assert.Equal(t, 0, got.Tiffins)
	assert.True(t, got.Amount.IsZero())
}

func TestSum(t *testing.T) {
	orders := []store.Order{
		order("2024-06-01", 2, 120),
		order("2024-06-02", 1, 60),
		order("2024-07-01", 3, 180),
	}

	got := Sum(orders)
	assert.Equal(t, 3, got.Orders)
	assert.Equal(t, 6, got.Tiffins)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(360)))
}

func TestForDate(t *testing.T) {
	orders := []store.Order{
		order("2024-06-01", 2, 120),
		order("2024-06-02", 1, 60),
	}

	got := ForDate(orders, "2024-06-01")
	assert.Equal(t, 1, got.Orders)
	assert.Equal(t, 2, got.Tiffins)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(120)))

	none := ForDate(orders, "2024-06-03")
	assert.Equal(t, 0, none.Orders)
	assert.True(t, none.Amount.IsZero())
}

func TestForMonth(t *testing.T) {
	orders := []store.Order{
		order("2024-06-01", 2, 120),
		order("2024-06-15", 1, 60),
		order("2024-07-01", 1, 60),
		order("2023-06-01", 1, 60),
	}

	got := ForMonth(orders, "2024-06")
	assert.Equal(t, 2, got.Orders)
	assert.Equal(t, 3, got.Tiffins)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(180)))
}

func TestForWeek(t *testing.T) {
	// 2024-06-12 is a Wednesday; the Monday-start week is 06-10 .. 06-16.
	now := time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)
	orders := []store.Order{
		order("2024-06-09", 1, 60), // Sunday before
		order("2024-06-10", 1, 60), // Monday, in week
		order("2024-06-16", 2, 120), // Sunday, in week
		order("2024-06-17", 1, 60), // Monday after
	}

	got := ForWeek(orders, now, time.Monday)
	assert.Equal(t, 2, got.Orders)
	assert.Equal(t, 3, got.Tiffins)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(180)))
}

func TestForWeekSundayStart(t *testing.T) {
	now := time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)
	orders := []store.Order{
		order("2024-06-09", 1, 60), // Sunday, in week now
		order("2024-06-15", 1, 60), // Saturday, in week
		order("2024-06-16", 1, 60), // next Sunday, out
	}

	got := ForWeek(orders, now, time.Sunday)
	assert.Equal(t, 2, got.Orders)
}

func TestWeekRange(t *testing.T) {
	wed := time.Date(2024, 6, 12, 9, 30, 0, 0, time.UTC)

	from, to := WeekRange(wed, time.Monday)
	assert.Equal(t, "2024-06-10", from)
	assert.Equal(t, "2024-06-17", to)

	from, to = WeekRange(wed, time.Sunday)
	assert.Equal(t, "2024-06-09", from)
	assert.Equal(t, "2024-06-16", to)
}

func TestWeekRangeOnBoundary(t *testing.T) {
	// A Monday with a Monday start maps to itself.
	mon := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	from, to := WeekRange(mon, time.Monday)
	assert.Equal(t, "2024-06-10", from)
	assert.Equal(t, "2024-06-17", to)
}
