package remind

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devanshm/tiffin/internal/store"
)

func settings(reminderTime string, skipWeekends bool) store.NotificationSettings {
	return store.NotificationSettings{
		Enabled:      true,
		ReminderTime: reminderTime,
		SkipWeekends: skipWeekends,
	}
}

func TestNextTimeTodaySlotAhead(t *testing.T) {
	// Wednesday 08:00, reminder at 09:00 — fires today.
	now := time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC)

	next, err := NextTime(settings("09:00", true), now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC), next)
}

func TestNextTimeSlotPassedRollsToTomorrow(t *testing.T) {
	// Wednesday 10:00, reminder at 09:00 — fires Thursday.
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	next, err := NextTime(settings("09:00", true), now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 13, 9, 0, 0, 0, time.UTC), next)
}

func TestNextTimeExactSlotRolls(t *testing.T) {
	// At the slot exactly, the next trigger is tomorrow, not now.
	now := time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)

	next, err := NextTime(settings("09:00", false), now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 13, 9, 0, 0, 0, time.UTC), next)
}

func TestNextTimeSkipsWeekend(t *testing.T) {
	// Saturday 10:00, slot passed — Sunday is skipped too, so Monday 09:00.
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	next, err := NextTime(settings("09:00", true), now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 17, 9, 0, 0, 0, time.UTC), next)
	assert.Equal(t, time.Monday, next.Weekday())
}

func TestNextTimeWeekendAllowed(t *testing.T) {
	now := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC) // Saturday

	next, err := NextTime(settings("09:00", false), now)
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, next.Weekday())
}

func TestNextTimeBadClock(t *testing.T) {
	now := time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC)

	_, err := NextTime(settings("9am", true), now)
	assert.Error(t, err)
}

func TestShouldRemindSameWeekdayOrdered(t *testing.T) {
	// Wednesday; last Wednesday was ordered and today is untracked.
	now := time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC)
	history := []store.TiffinStatus{
		{Date: "2024-06-05", Status: store.StatusOrdered}, // previous Wednesday
		{Date: "2024-06-11", Status: store.StatusSkipped}, // Tuesday
	}

	assert.True(t, ShouldRemind(now, history))
}

func TestShouldRemindTodayAlreadyHandled(t *testing.T) {
	now := time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC)
	history := []store.TiffinStatus{
		{Date: "2024-06-12", Status: store.StatusOrdered},
		{Date: "2024-06-05", Status: store.StatusOrdered},
	}

	assert.False(t, ShouldRemind(now, history))
}

func TestShouldRemindTodayPendingStillCounts(t *testing.T) {
	// A pending entry for today (reminder shown, no action) does not
	// suppress the hint.
	now := time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC)
	history := []store.TiffinStatus{
		{Date: "2024-06-12", Status: store.StatusPending, ReminderSent: true},
		{Date: "2024-06-05", Status: store.StatusOrdered},
	}

	assert.True(t, ShouldRemind(now, history))
}

func TestShouldRemindNoPattern(t *testing.T) {
	now := time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC)
	history := []store.TiffinStatus{
		{Date: "2024-06-05", Status: store.StatusSkipped}, // same weekday but skipped
		{Date: "2024-06-11", Status: store.StatusOrdered}, // different weekday
	}

	assert.False(t, ShouldRemind(now, history))
}

func TestShouldRemindIgnoresOldMatches(t *testing.T) {
	// A same-weekday order outside the 7-day window is not a pattern.
	now := time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC)
	history := []store.TiffinStatus{
		{Date: "2024-05-29", Status: store.StatusOrdered}, // Wednesday two weeks back
	}

	assert.False(t, ShouldRemind(now, history))
}

func TestShouldRemindEmptyHistory(t *testing.T) {
	now := time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC)
	assert.False(t, ShouldRemind(now, nil))
}
