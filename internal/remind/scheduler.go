package remind

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/devanshm/tiffin/internal/store"
)

// Notifier shows a reminder to the user. Implementations are fire-and-
// forget: a notifier that cannot deliver simply does nothing.
type Notifier interface {
	Notify(title, body string)
}

// Scheduler owns the single pending reminder timer. Reschedule replaces the
// timer wholesale; there is never more than one pending trigger.
type Scheduler struct {
	store    *store.Store
	notifier Notifier
	log      *zap.Logger

	now func() time.Time // injectable for tests

	mu    sync.Mutex
	timer *time.Timer
}

func NewScheduler(s *store.Store, n Notifier, log *zap.Logger) *Scheduler {
	return &Scheduler{
		store:    s,
		notifier: n,
		log:      log,
		now:      time.Now,
	}
}

// Reschedule cancels any pending trigger and, when reminders are enabled,
// arms a new one at the next computed instant. Call after every settings
// change.
func (s *Scheduler) Reschedule() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	ns := s.store.GetNotificationSettings()
	if !ns.Enabled {
		s.log.Debug("reminders disabled, nothing scheduled")
		return
	}

	now := s.now()
	next, err := NextTime(ns, now)
	if err != nil {
		s.log.Warn("compute next reminder", zap.Error(err))
		return
	}

	s.log.Info("reminder scheduled", zap.Time("at", next))
	s.timer = time.AfterFunc(next.Sub(now), s.fire)
}

// Stop cancels the pending trigger, if any.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// fire shows today's reminder when the day is still pending and unhandled,
// then arms the next trigger. Any failure degrades to a silent no-op.
func (s *Scheduler) fire() {
	now := s.now()
	today := now.Format("2006-01-02")

	ns := s.store.GetNotificationSettings()
	if ns.Enabled && s.dueToday(ns, now, today) {
		s.notifier.Notify("Tiffin reminder", "Don't forget to order your tiffin for today!")
		if err := s.store.MarkReminderSent(today); err != nil {
			s.log.Warn("mark reminder sent", zap.Error(err))
		}
	}

	s.Reschedule()
}

func (s *Scheduler) dueToday(ns store.NotificationSettings, now time.Time, today string) bool {
	if ns.SkipWeekends && isWeekend(now.Weekday()) {
		return false
	}
	st, err := s.store.GetStatus(today)
	if err != nil {
		s.log.Warn("read today status", zap.Error(err))
		return false
	}
	return st.Status == store.StatusPending && !st.ReminderSent
}
