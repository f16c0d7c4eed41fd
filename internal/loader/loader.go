// Package loader reads stock and alloy definitions from JSON data files
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/napolitain/solver-tfc/internal/models"
)

// StockEntryJSON represents the JSON structure for one stock entry
type StockEntryJSON struct {
	Name         string `json:"name"`
	ProducedType string `json:"produced_type"`
	YieldPerUnit int    `json:"yield_per_unit"`
	Quantity     int    `json:"quantity"`
}

// ComponentJSON represents the JSON structure for one alloy component
type ComponentJSON struct {
	ProducedType string  `json:"produced_type"`
	MinPercent   float64 `json:"min_percent"`
	MaxPercent   float64 `json:"max_percent"`
}

// AlloyJSON represents the JSON structure for one alloy specification
type AlloyJSON struct {
	Name       string          `json:"name"`
	Components []ComponentJSON `json:"components"`
}

// LoadStock loads the mineral stock from stock.json in the data directory
func LoadStock(dataDir string) (models.Stock, error) {
	filePath := filepath.Join(dataDir, "stock.json")
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read stock.json: %w", err)
	}

	var raw []StockEntryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse stock.json: %w", err)
	}

	stock := make(models.Stock, 0, len(raw))
	seen := make(map[string]bool)

	for _, e := range raw {
		if e.Name == "" {
			return nil, fmt.Errorf("stock entry with empty name")
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("duplicate mineral %q in stock", e.Name)
		}
		seen[e.Name] = true

		if e.YieldPerUnit <= 0 {
			return nil, fmt.Errorf("mineral %q has non-positive yield %d", e.Name, e.YieldPerUnit)
		}
		if e.Quantity < 0 {
			return nil, fmt.Errorf("mineral %q has negative quantity %d", e.Name, e.Quantity)
		}

		stock = append(stock, models.StockEntry{
			Mineral: models.Mineral{
				Name:         e.Name,
				ProducedType: e.ProducedType,
				YieldPerUnit: e.YieldPerUnit,
			},
			Quantity: e.Quantity,
		})
	}

	return stock, nil
}

// LoadAlloys loads alloy specifications from alloys.json in the data
// directory. A missing file is not an error: the built-in defaults are
// returned instead.
func LoadAlloys(dataDir string) ([]models.AlloySpec, error) {
	filePath := filepath.Join(dataDir, "alloys.json")
	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return models.DefaultAlloys(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read alloys.json: %w", err)
	}

	var raw []AlloyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse alloys.json: %w", err)
	}

	alloys := make([]models.AlloySpec, 0, len(raw))

	for _, a := range raw {
		if a.Name == "" {
			return nil, fmt.Errorf("alloy with empty name")
		}
		if len(a.Components) == 0 {
			return nil, fmt.Errorf("alloy %q has no components", a.Name)
		}

		spec := models.AlloySpec{Name: a.Name}
		for _, c := range a.Components {
			if c.MinPercent < 0 || c.MaxPercent > 100 || c.MinPercent > c.MaxPercent {
				return nil, fmt.Errorf("alloy %q component %q has invalid band [%.1f, %.1f]",
					a.Name, c.ProducedType, c.MinPercent, c.MaxPercent)
			}
			spec.Components = append(spec.Components, models.ComponentRequirement{
				ProducedType: c.ProducedType,
				MinPercent:   c.MinPercent,
				MaxPercent:   c.MaxPercent,
			})
		}
		alloys = append(alloys, spec)
	}

	return alloys, nil
}
