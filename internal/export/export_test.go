package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/devanshm/tiffin/internal/store"
)

func sampleOrders() []store.Order {
	return []store.Order{
		{
			ID:              "a1",
			Date:            "2024-06-01",
			NumberOfTiffins: 2,
			PricePerTiffin:  decimal.NewFromInt(60),
			TotalAmount:     decimal.NewFromInt(120),
		},
		{
			ID:              "b2",
			Date:            "2024-06-02",
			NumberOfTiffins: 1,
			PricePerTiffin:  decimal.RequireFromString("45.50"),
			TotalAmount:     decimal.RequireFromString("45.50"),
		},
	}
}

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")

	if err := ToCSV(sampleOrders(), path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "ID" {
		t.Fatalf("expected header row, got %v", rows[0])
	}
	if rows[1][1] != "2024-06-01" || rows[1][4] != "120" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[2][3] != "45.5" {
		t.Fatalf("unexpected price column: %v", rows[2])
	}
}

func TestToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	if err := ToCSV(nil, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("expected header even for empty export")
	}
}

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")

	if err := ToJSON(sampleOrders(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var got jsonExport
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Count != 2 || len(got.Orders) != 2 {
		t.Fatalf("expected 2 orders, got count=%d len=%d", got.Count, len(got.Orders))
	}
	if got.ExportedAt == "" {
		t.Fatal("expected exported_at timestamp")
	}
	if got.Orders[0].Date != "2024-06-01" || got.Orders[0].TotalAmount != "120" {
		t.Fatalf("unexpected first order: %+v", got.Orders[0])
	}
}
