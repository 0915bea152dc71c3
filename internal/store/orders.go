package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddOrder inserts a new order with a fresh id. Any existing order for the
// same date is replaced (last write wins), regardless of its id.
func (s *Store) AddOrder(in OrderInput) (*Order, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	total := in.PricePerTiffin.Mul(decimal.NewFromInt(int64(in.NumberOfTiffins)))
	id := uuid.NewString()

	if _, err := s.db.Exec(`DELETE FROM orders WHERE date = ?`, in.Date); err != nil {
		return nil, fmt.Errorf("replace order for %s: %w", in.Date, err)
	}
	_, err := s.db.Exec(
		`INSERT INTO orders (id, date, tiffins, price, total, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, in.Date, in.NumberOfTiffins, in.PricePerTiffin.String(), total.String(), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return s.GetOrder(id)
}

// UpdateOrder replaces quantity and price for an existing order and
// recomputes the total. Identity (id, date) is unchanged. Updating a
// non-existent id is a silent no-op and returns nil, nil.
func (s *Store) UpdateOrder(id string, tiffins int, price decimal.Decimal) (*Order, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	total := price.Mul(decimal.NewFromInt(int64(tiffins)))

	res, err := s.db.Exec(
		`UPDATE orders SET tiffins = ?, price = ?, total = ?, updated_at = ? WHERE id = ?`,
		tiffins, price.String(), total.String(), now, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update order %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetOrder(id)
}

// RemoveOrder deletes the order with the given id; no-op when absent.
func (s *Store) RemoveOrder(id string) error {
	_, err := s.db.Exec(`DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("remove order %s: %w", id, err)
	}
	return nil
}

func (s *Store) GetOrder(id string) (*Order, error) {
	row := s.db.QueryRow(
		`SELECT id, date, tiffins, price, total, created_at, updated_at FROM orders WHERE id = ?`, id,
	)
	o, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return o, nil
}

// ListOrders returns all orders, most recently inserted first.
func (s *Store) ListOrders() ([]Order, error) {
	return s.listOrders(`SELECT id, date, tiffins, price, total, created_at, updated_at FROM orders ORDER BY rowid DESC`)
}

// ListOrdersByMonth filters by YYYY-MM prefix on the date.
func (s *Store) ListOrdersByMonth(month string) ([]Order, error) {
	return s.listOrders(
		`SELECT id, date, tiffins, price, total, created_at, updated_at FROM orders WHERE date LIKE ? || '-%' ORDER BY date DESC`,
		month,
	)
}

// ListOrdersByDate returns the orders for an exact date; 0 or 1 rows when
// the per-date invariant holds, but the query itself does not assume it.
func (s *Store) ListOrdersByDate(date string) ([]Order, error) {
	return s.listOrders(
		`SELECT id, date, tiffins, price, total, created_at, updated_at FROM orders WHERE date = ? ORDER BY rowid DESC`,
		date,
	)
}

// CleanupOrders repairs databases written by older builds: rows sharing a
// date are deduplicated keeping the newest insert. Returns rows removed.
func (s *Store) CleanupOrders() (int, error) {
	res, err := s.db.Exec(`
		DELETE FROM orders
		WHERE rowid NOT IN (SELECT MAX(rowid) FROM orders GROUP BY date)`)
	if err != nil {
		return 0, fmt.Errorf("cleanup orders: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (s *Store) listOrders(query string, args ...any) ([]Order, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*Order, error) {
	o := &Order{}
	var price, total, createdAt, updatedAt string
	if err := row.Scan(&o.ID, &o.Date, &o.NumberOfTiffins, &price, &total, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	// Corrupt decimals decode to zero rather than failing the whole read.
	o.PricePerTiffin, _ = decimal.NewFromString(price)
	o.TotalAmount, _ = decimal.NewFromString(total)
	o.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	o.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return o, nil
}
