package alloy

import (
	"github.com/napolitain/solver-tfc/internal/models"
)

// SubtractAllocation returns the stock left after consuming the given
// allocation. Entries whose remaining quantity drops to zero or below are
// removed. Neither input is mutated; each iteration of the solve loop
// threads a fresh snapshot through this function.
func SubtractAllocation(stock models.Stock, consumed models.Allocation) models.Stock {
	next := make(models.Stock, 0, len(stock))

	for _, e := range stock {
		remaining := e.Quantity - consumed.QuantityOf(e.Mineral.Name)
		if remaining <= 0 {
			continue
		}
		next = append(next, models.StockEntry{Mineral: e.Mineral, Quantity: remaining})
	}

	return next
}
