package store

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// retentionDays is the trailing window kept in status_history.
const retentionDays = 30

// GetStatus returns the stored status for a date, or a synthesized pending
// entry (not written to the store) when none exists.
func (s *Store) GetStatus(date string) (*TiffinStatus, error) {
	row := s.db.QueryRow(
		`SELECT date, status, tiffins, total, updated_at, reminder_sent FROM status_history WHERE date = ?`, date,
	)
	st, err := scanStatus(row)
	if errors.Is(err, sql.ErrNoRows) {
		return &TiffinStatus{
			Date:      date,
			Status:    StatusPending,
			Timestamp: time.Now().UTC(),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get status %s: %w", date, err)
	}
	return st, nil
}

// SetStatus upserts the entry for a date. Numeric fields are kept only for
// ordered days; marking a day skipped clears them. The write also marks the
// reminder handled and prunes entries older than the retention window.
func (s *Store) SetStatus(date string, status Status, tiffins *int, total *decimal.Decimal) error {
	now := time.Now().UTC()

	var t any
	var amt any
	if status == StatusOrdered {
		if tiffins != nil {
			t = *tiffins
		}
		if total != nil {
			amt = total.String()
		}
	}

	_, err := s.db.Exec(
		`INSERT INTO status_history (date, status, tiffins, total, updated_at, reminder_sent)
		 VALUES (?, ?, ?, ?, ?, 1)
		 ON CONFLICT(date) DO UPDATE SET
			status = excluded.status,
			tiffins = excluded.tiffins,
			total = excluded.total,
			updated_at = excluded.updated_at,
			reminder_sent = 1`,
		date, string(status), t, amt, now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("set status %s: %w", date, err)
	}
	return s.pruneStatus(now)
}

// ClearStatus deletes the entry for a date, e.g. when an order is moved.
func (s *Store) ClearStatus(date string) error {
	_, err := s.db.Exec(`DELETE FROM status_history WHERE date = ?`, date)
	if err != nil {
		return fmt.Errorf("clear status %s: %w", date, err)
	}
	return nil
}

// MarkReminderSent records that the reminder for a date was shown without
// the user acting yet; the day stays pending.
func (s *Store) MarkReminderSent(date string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO status_history (date, status, updated_at, reminder_sent)
		 VALUES (?, 'pending', ?, 1)
		 ON CONFLICT(date) DO UPDATE SET reminder_sent = 1`,
		date, now,
	)
	if err != nil {
		return fmt.Errorf("mark reminder sent %s: %w", date, err)
	}
	return nil
}

// ListStatusHistory returns the retained entries, newest date first.
func (s *Store) ListStatusHistory() ([]TiffinStatus, error) {
	rows, err := s.db.Query(
		`SELECT date, status, tiffins, total, updated_at, reminder_sent FROM status_history ORDER BY date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list status history: %w", err)
	}
	defer rows.Close()

	var history []TiffinStatus
	for rows.Next() {
		st, err := scanStatus(rows)
		if err != nil {
			return nil, err
		}
		history = append(history, *st)
	}
	return history, rows.Err()
}

// GetStatusStats aggregates the retained history.
func (s *Store) GetStatusStats() (StatusStats, error) {
	var st StatusStats
	err := s.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(status = 'ordered'), 0),
		       COALESCE(SUM(status = 'skipped'), 0),
		       COALESCE(SUM(status = 'pending'), 0)
		FROM status_history`,
	).Scan(&st.TotalDays, &st.OrderedDays, &st.SkippedDays, &st.PendingDays)
	if err != nil {
		return StatusStats{}, fmt.Errorf("status stats: %w", err)
	}
	if st.TotalDays > 0 {
		st.OrderRate = int(math.Round(float64(st.OrderedDays) / float64(st.TotalDays) * 100))
	}
	return st, nil
}

func (s *Store) pruneStatus(now time.Time) error {
	cutoff := now.AddDate(0, 0, -retentionDays).Format("2006-01-02")
	_, err := s.db.Exec(`DELETE FROM status_history WHERE date < ?`, cutoff)
	if err != nil {
		return fmt.Errorf("prune status history: %w", err)
	}
	return nil
}

func scanStatus(row rowScanner) (*TiffinStatus, error) {
	st := &TiffinStatus{}
	var status, updatedAt string
	var tiffins sql.NullInt64
	var total sql.NullString
	var sent int
	if err := row.Scan(&st.Date, &status, &tiffins, &total, &updatedAt, &sent); err != nil {
		return nil, err
	}
	st.Status = Status(status)
	if tiffins.Valid {
		n := int(tiffins.Int64)
		st.NumberOfTiffins = &n
	}
	if total.Valid {
		d, _ := decimal.NewFromString(total.String)
		st.TotalAmount = &d
	}
	st.Timestamp, _ = time.Parse(time.RFC3339, updatedAt)
	st.ReminderSent = sent == 1
	return st, nil
}
