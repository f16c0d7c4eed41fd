package alloy

import (
	"sort"

	"github.com/napolitain/solver-tfc/internal/models"
)

// GroupByType groups stock entries by produced type (lower-cased).
// Each group is sorted descending by yield per unit; ties keep insertion
// order so the search tries rich minerals first.
func GroupByType(stock models.Stock) map[string][]models.StockEntry {
	groups := make(map[string][]models.StockEntry)

	for _, e := range stock {
		key := e.Mineral.ProducedTypeKey()
		groups[key] = append(groups[key], e)
	}

	for _, entries := range groups {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Mineral.YieldPerUnit > entries[j].Mineral.YieldPerUnit
		})
	}

	return groups
}

// TotalVolumeByType sums the available volume (quantity * yield) per
// produced type, used for up-front feasibility checks
func TotalVolumeByType(stock models.Stock) map[string]int {
	totals := make(map[string]int)
	for _, e := range stock {
		totals[e.Mineral.ProducedTypeKey()] += e.Volume()
	}
	return totals
}
