package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is one day's tiffin order. Date is the business key: the write path
// keeps at most one order per calendar date.
type Order struct {
	ID              string
	Date            string // YYYY-MM-DD
	NumberOfTiffins int
	PricePerTiffin  decimal.Decimal
	TotalAmount     decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderInput is what the user submits; id and total are derived.
type OrderInput struct {
	Date            string
	NumberOfTiffins int
	PricePerTiffin  decimal.Decimal
}

type Status string

const (
	StatusOrdered Status = "ordered"
	StatusSkipped Status = "skipped"
	StatusPending Status = "pending"
)

// TiffinStatus tracks whether a day was ordered, skipped, or is still
// pending. Tiffins/TotalAmount mirror the order and are set only when
// Status is ordered. A date with no stored row is implicitly pending.
type TiffinStatus struct {
	Date            string
	Status          Status
	NumberOfTiffins *int
	TotalAmount     *decimal.Decimal
	Timestamp       time.Time
	ReminderSent    bool
}

// StatusStats summarizes the retained status history.
type StatusStats struct {
	TotalDays   int
	OrderedDays int
	SkippedDays int
	PendingDays int
	OrderRate   int // percent, rounded
}

// NotificationSettings is the singleton reminder configuration.
type NotificationSettings struct {
	Enabled      bool
	ReminderTime string // HH:MM
	SkipWeekends bool
	ReminderDays int // lead time in days, 0 = same day
}
