package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/devanshm/tiffin/internal/store"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Orders     []jsonOrder `json:"orders"`
}

type jsonOrder struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	Tiffins        int    `json:"number_of_tiffins"`
	PricePerTiffin string `json:"price_per_tiffin"`
	TotalAmount    string `json:"total_amount"`
}

func ToJSON(orders []store.Order, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(orders),
	}

	for _, o := range orders {
		export.Orders = append(export.Orders, jsonOrder{
			ID:             o.ID,
			Date:           o.Date,
			Tiffins:        o.NumberOfTiffins,
			PricePerTiffin: o.PricePerTiffin.String(),
			TotalAmount:    o.TotalAmount.String(),
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
