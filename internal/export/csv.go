package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/devanshm/tiffin/internal/store"
)

func ToCSV(orders []store.Order, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Date", "Tiffins", "Price Per Tiffin", "Total Amount"}); err != nil {
		return err
	}

	for _, o := range orders {
		row := []string{
			o.ID,
			o.Date,
			fmt.Sprintf("%d", o.NumberOfTiffins),
			o.PricePerTiffin.String(),
			o.TotalAmount.String(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
