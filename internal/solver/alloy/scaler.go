package alloy

import (
	"github.com/napolitain/solver-tfc/internal/models"
)

// ScaleBatch computes the largest integer factor by which the batch can be
// repeated without exceeding the given stock and applies it, multiplying
// every allocation quantity and the output volume. Returns the scaled
// batch and the factor (>= 1). An empty allocation is treated as unbounded
// and left alone. Scaling amortizes one combinatorial search across
// several physical batches of identical composition.
//
// The factor is bounded by stock alone, not by the solve's remaining
// target, so a scaled batch can consume more material than the solve
// ultimately reports as output. Callers reading consumption must sum the
// allocation volumes, not the reported output volume.
func ScaleBatch(batch models.BatchResult, stock models.Stock) (models.BatchResult, int) {
	factor := 0

	for _, e := range batch.Allocation {
		if e.Quantity <= 0 {
			continue
		}
		limit := stock.QuantityOf(e.Mineral.Name) / e.Quantity
		if factor == 0 || limit < factor {
			factor = limit
		}
	}

	if factor < 1 {
		factor = 1
	}

	if factor > 1 {
		scaled := batch.Allocation.Clone()
		for i := range scaled {
			scaled[i].Quantity *= factor
		}
		batch.Allocation = scaled
		batch.OutputVolume *= factor
	}

	return batch, factor
}
