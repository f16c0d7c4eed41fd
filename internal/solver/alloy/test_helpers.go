package alloy

import (
	"testing"

	"github.com/napolitain/solver-tfc/internal/models"
)

// Helpers shared across the solver tests.

func mineral(name, producedType string, yield int) models.Mineral {
	return models.Mineral{Name: name, ProducedType: producedType, YieldPerUnit: yield}
}

func entry(name, producedType string, yield, qty int) models.StockEntry {
	return models.StockEntry{Mineral: mineral(name, producedType, yield), Quantity: qty}
}

// bronzeSpec is the canonical two-component alloy used throughout the tests
func bronzeSpec() models.AlloySpec {
	return models.AlloySpec{
		Name: "Bronze",
		Components: []models.ComponentRequirement{
			{ProducedType: "tin", MinPercent: 8, MaxPercent: 12},
			{ProducedType: "copper", MinPercent: 88, MaxPercent: 92},
		},
	}
}

// exactFitStock fits Bronze at 432 mB with nothing left over
func exactFitStock() models.Stock {
	return models.Stock{
		entry("tin-ore", "tin", 16, 3),
		entry("copper-ore", "copper", 24, 7),
		entry("copper-ore-2", "copper", 36, 6),
	}
}

// checkBands fails the test if any component share of the allocation falls
// outside its band
func checkBands(t *testing.T, alloc models.Allocation, spec models.AlloySpec) {
	t.Helper()

	total := alloc.Volume()
	if total == 0 {
		t.Fatal("allocation has zero volume")
	}

	for _, req := range spec.Components {
		pct := float64(alloc.VolumeOfType(req.ProducedType)) / float64(total) * 100
		if pct < req.MinPercent || pct > req.MaxPercent {
			t.Errorf("%s share %.2f%% outside [%.1f, %.1f]",
				req.ProducedType, pct, req.MinPercent, req.MaxPercent)
		}
	}
}
