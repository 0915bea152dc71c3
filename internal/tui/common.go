package tui

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/devanshm/tiffin/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewToday viewState = iota
	viewHistory
	viewReports
	viewStatus
	viewSettings
)

var viewNames = []string{"Today", "History", "Reports", "Status", "Settings"}

// --- Messages ---

type orderSavedMsg struct {
	order *store.Order
}

type orderDeletedMsg struct {
	date string
}

type daySkippedMsg struct {
	date string
}

type settingsSavedMsg struct{}

type reminderMsg struct {
	title string
	body  string
}

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

const dateLayout = "2006-01-02"

func todayStr() string {
	return time.Now().Format(dateLayout)
}

func formatAmount(d decimal.Decimal) string {
	return "₹" + d.String()
}

// shiftDate moves a YYYY-MM-DD date by days; malformed input comes back
// unchanged.
func shiftDate(date string, days int) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return d.AddDate(0, 0, days).Format(dateLayout)
}

// shiftMonth moves a YYYY-MM month by months.
func shiftMonth(month string, months int) string {
	m, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return m.AddDate(0, months, 0).Format("2006-01")
}
