package store

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type Setting struct {
	Key   string
	Value string
}

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// GetNotificationSettings assembles the reminder configuration from the
// settings table, falling back to defaults for missing keys.
func (s *Store) GetNotificationSettings() NotificationSettings {
	ns := NotificationSettings{
		Enabled:      false,
		ReminderTime: "09:00",
		SkipWeekends: true,
		ReminderDays: 0,
	}
	if v, err := s.GetSetting("reminder_enabled"); err == nil {
		ns.Enabled = v == "1"
	}
	if v, err := s.GetSetting("reminder_time"); err == nil && v != "" {
		ns.ReminderTime = v
	}
	if v, err := s.GetSetting("skip_weekends"); err == nil {
		ns.SkipWeekends = v == "1"
	}
	if v, err := s.GetSetting("reminder_days"); err == nil {
		if n, err := strconv.Atoi(v); err == nil {
			ns.ReminderDays = n
		}
	}
	return ns
}

// SaveNotificationSettings writes the full reminder configuration back.
func (s *Store) SaveNotificationSettings(ns NotificationSettings) error {
	pairs := map[string]string{
		"reminder_enabled": boolSetting(ns.Enabled),
		"reminder_time":    ns.ReminderTime,
		"skip_weekends":    boolSetting(ns.SkipWeekends),
		"reminder_days":    strconv.Itoa(ns.ReminderDays),
	}
	for k, v := range pairs {
		if err := s.SetSetting(k, v); err != nil {
			return fmt.Errorf("save notification settings: %w", err)
		}
	}
	return nil
}

// DefaultPrice returns the configured per-tiffin price used to prefill the
// order form.
func (s *Store) DefaultPrice() decimal.Decimal {
	if v, err := s.GetSetting("price_per_tiffin"); err == nil {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return decimal.NewFromInt(60)
}

// WeekStart returns the configured first day of the week for weekly stats.
func (s *Store) WeekStart() time.Weekday {
	if v, err := s.GetSetting("week_start"); err == nil && v == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

func boolSetting(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
