package inventory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// SampleCatalog is the default five-product seed used when no catalog file
// is configured.
func SampleCatalog() []Product {
	return []Product{
		{ID: "p1", Name: "Laptop", UnitPrice: decimal.NewFromFloat(999.99), Quantity: 10},
		{ID: "p2", Name: "Smartphone", UnitPrice: decimal.NewFromFloat(499.99), Quantity: 20},
		{ID: "p3", Name: "Headphones", UnitPrice: decimal.NewFromFloat(99.99), Quantity: 30},
		{ID: "p4", Name: "Keyboard", UnitPrice: decimal.NewFromFloat(49.99), Quantity: 15},
		{ID: "p5", Name: "Mouse", UnitPrice: decimal.NewFromFloat(29.99), Quantity: 25},
	}
}

// LoadCatalog reads a JSON catalog file ([{id, name, price, quantity}, ...]).
func LoadCatalog(path string) ([]Product, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var catalog []Product
	if err := json.Unmarshal(b, &catalog); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for _, p := range catalog {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog entry without id")
		}
		if p.Quantity < 0 {
			return nil, fmt.Errorf("catalog entry %s: negative quantity", p.ID)
		}
	}
	return catalog, nil
}
