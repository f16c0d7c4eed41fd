// Package alloy implements the smelting allocation engine: it decides
// which raw minerals, in what quantities, combine into a target volume of
// a multi-component alloy whose constituent percentages must each fall
// within a specified band, using a finite stock.
package alloy

import (
	"fmt"
	"runtime"
	"time"

	"github.com/napolitain/solver-tfc/internal/converter"
	"github.com/napolitain/solver-tfc/internal/models"
)

// Default engine tunables
const (
	DefaultUnitSizeMB     = converter.MBPerIngot // 144 mB per ingot
	DefaultMaxBatchIngots = 8
)

// Solver finds mineral allocations producing a target volume of an alloy
type Solver struct {
	UnitSizeMB     int
	MaxBatchIngots int
}

// NewSolver creates a solver with the default batch tunables
func NewSolver() *Solver {
	return &Solver{
		UnitSizeMB:     DefaultUnitSizeMB,
		MaxBatchIngots: DefaultMaxBatchIngots,
	}
}

// NewSolverWithConfig creates a solver with overridden tunables.
// Values <= 0 keep the defaults.
func NewSolverWithConfig(unitSizeMB, maxBatchIngots int) *Solver {
	s := NewSolver()
	if unitSizeMB > 0 {
		s.UnitSizeMB = unitSizeMB
	}
	if maxBatchIngots > 0 {
		s.MaxBatchIngots = maxBatchIngots
	}
	return s
}

// Solve finds a consolidated allocation producing exactly targetVolume mB
// of the given alloy from the given stock. The stock is treated as
// read-only; decremented snapshots are threaded through the batch loop.
// Solve always returns a value, never panics on infeasible input.
func (s *Solver) Solve(targetVolume int, spec models.AlloySpec, stock models.Stock) models.SolveResult {
	start := time.Now()
	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	result := s.solve(targetVolume, spec, stock)

	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	result.Stats.ElapsedTimeMs = float64(time.Since(start).Microseconds()) / 1000.0
	result.Stats.MemoryDeltaMB = (float64(after.TotalAlloc) - float64(before.TotalAlloc)) / (1024 * 1024)

	return result
}

func (s *Solver) solve(targetVolume int, spec models.AlloySpec, stock models.Stock) models.SolveResult {
	var stats models.SolveStats

	if targetVolume <= 0 {
		return models.SolveResult{
			Reason:  models.FailureNoValidCombinationFound,
			Message: "target volume must be positive",
			Stats:   stats,
		}
	}

	// Gross feasibility: enough total material for the whole target
	if total := stock.TotalVolume(); total < targetVolume {
		return models.SolveResult{
			Reason: models.FailureInsufficientTotalMaterial,
			Message: fmt.Sprintf("insufficient total material: have %s, need %s",
				converter.FormatVolume(total), converter.FormatVolume(targetVolume)),
			Stats: stats,
		}
	}

	// Per-component feasibility: each type can reach its minimum share
	byType := TotalVolumeByType(stock)
	for _, req := range spec.Components {
		required := req.MinPercent / 100 * float64(targetVolume)
		if available := byType[req.ProducedTypeKey()]; float64(available) < required {
			return models.SolveResult{
				Reason: models.FailureInsufficientComponentMaterial,
				Message: fmt.Sprintf("insufficient %s: have %d mB, need at least %.0f mB",
					req.ProducedType, available, required),
				Stats: stats,
			}
		}
	}

	plan := NewBatchPlan(s.MaxBatchIngots, s.UnitSizeMB)

	var batches []models.BatchResult
	remaining := targetVolume
	previous := plan.MaxVolume() + 1 // first attempt may use the full max size
	produced := 0

	for remaining > 0 {
		candidate, ok := plan.Next(remaining, previous)
		if !ok {
			// No smaller size left. Earlier accepted batches are not
			// revisited; a backtracking strategy here is a known gap.
			break
		}

		stats.BatchCount++
		batch := AssembleBatch(candidate, spec, stock)
		stats.AddGeneration(batch.Stats)

		if batch.Success {
			var factor int
			batch, factor = ScaleBatch(batch, stock)
			stats.ScaleEfficiency += factor - 1
			stats.BatchAccepts++

			batches = append(batches, batch)
			stock = SubtractAllocation(stock, batch.Allocation)
			remaining -= batch.OutputVolume
			produced += batch.OutputVolume
		} else {
			stats.BatchDeclines++
			if len(batches) > 0 {
				stats.BacktrackPotential++
			}
		}

		// Sizes strictly decrease across the whole solve, success or not
		previous = candidate
	}

	if produced >= targetVolume {
		var consolidated models.Allocation
		for _, b := range batches {
			consolidated = consolidated.Merge(b.Allocation)
		}
		return models.SolveResult{
			Success:      true,
			OutputVolume: targetVolume,
			Allocation:   consolidated,
			Stats:        stats,
		}
	}

	return models.SolveResult{
		Reason:  models.FailureNoValidCombinationFound,
		Message: "could not find valid combination of materials",
		Stats:   stats,
	}
}
