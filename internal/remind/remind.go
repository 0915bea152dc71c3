// Package remind computes reminder trigger times and decides whether a
// reminder is worth showing, based on the user's recent ordering pattern.
package remind

import (
	"fmt"
	"time"

	"github.com/devanshm/tiffin/internal/store"
)

// NextTime finds the earliest instant after now that matches the configured
// HH:MM, rolling to the next day when today's slot has passed and skipping
// Saturday/Sunday while SkipWeekends is set.
func NextTime(ns store.NotificationSettings, now time.Time) (time.Time, error) {
	at, err := time.Parse("15:04", ns.ReminderTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse reminder time %q: %w", ns.ReminderTime, err)
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), at.Hour(), at.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	if ns.SkipWeekends {
		for i := 0; i < 7 && isWeekend(next.Weekday()); i++ {
			next = next.AddDate(0, 0, 1)
		}
	}
	return next, nil
}

// ShouldRemind reports whether a reminder is worth showing today: true only
// when today is still unhandled and at least one of the last 7 prior days
// with a stored status falls on the same weekday and was ordered. This is a
// best-effort pattern signal, not a guarantee.
func ShouldRemind(now time.Time, history []store.TiffinStatus) bool {
	today := now.Format("2006-01-02")

	for _, st := range history {
		if st.Date == today && st.Status != store.StatusPending {
			return false
		}
	}

	cutoff := now.AddDate(0, 0, -7).Format("2006-01-02")
	weekday := now.Weekday()
	for _, st := range history {
		if st.Date >= today || st.Date < cutoff {
			continue
		}
		d, err := time.Parse("2006-01-02", st.Date)
		if err != nil {
			continue
		}
		if d.Weekday() == weekday && st.Status == store.StatusOrdered {
			return true
		}
	}
	return false
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}
