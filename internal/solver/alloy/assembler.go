package alloy

import (
	"fmt"
	"math"
	"sort"

	"github.com/napolitain/solver-tfc/internal/models"
)

// AssembleBatch tries to find one allocation whose total volume equals
// targetVolume and whose per-type shares satisfy every component band of
// the alloy.
//
// Requirements are processed ascending by minimum percentage so tightly
// bounded components are resolved before loose ones. For every requirement
// except the last, the first combination returned by the search is accepted
// unconditionally: volumes from distinct produced types are additive, so
// any combination inside its own interval is valid to carry forward. Only
// the last requirement validates the whole allocation, since only there can
// the total land exactly on targetVolume. This is a greedy heuristic, not
// an exhaustive search.
func AssembleBatch(targetVolume int, spec models.AlloySpec, stock models.Stock) models.BatchResult {
	var stats models.SolveStats

	if len(spec.Components) == 0 {
		return models.BatchResult{
			Reason:  models.FailureNoGlobalCombination,
			Message: fmt.Sprintf("alloy %s has no components", spec.Name),
			Stats:   stats,
		}
	}

	groups := GroupByType(stock)

	reqs := make([]models.ComponentRequirement, len(spec.Components))
	copy(reqs, spec.Components)
	sort.SliceStable(reqs, func(i, j int) bool {
		return reqs[i].MinPercent < reqs[j].MinPercent
	})

	var running models.Allocation

	for i, req := range reqs {
		minVolume := req.MinPercent / 100 * float64(targetVolume)
		maxVolume := req.MaxPercent / 100 * float64(targetVolume)

		search := SearchCombinations(groups[req.ProducedTypeKey()], minVolume, maxVolume)
		stats.GenerationRuns += search.Runs
		stats.GenerationAccepts += search.Accepts
		stats.GenerationDeclines += search.Declines

		if len(search.Combinations) == 0 {
			return models.BatchResult{
				Reason: models.FailureNoCombinationForComponent,
				Message: fmt.Sprintf("no combination of %s minerals yields between %.0f and %.0f mB",
					req.ProducedType, minVolume, maxVolume),
				Stats: stats,
			}
		}

		if i < len(reqs)-1 {
			running = running.Merge(search.Combinations[0])
			continue
		}

		// Last requirement: the only place the global solution can be
		// confirmed, so every candidate is checked against the full spec.
		for _, combo := range search.Combinations {
			candidate := running.Clone().Merge(combo)
			if validAllocation(candidate, targetVolume, spec) {
				return models.BatchResult{
					Success:      true,
					OutputVolume: candidate.Volume(),
					Allocation:   candidate,
					Stats:        stats,
				}
			}
		}
	}

	return models.BatchResult{
		Reason:  models.FailureNoGlobalCombination,
		Message: fmt.Sprintf("no allocation satisfies every component of %s at %d mB", spec.Name, targetVolume),
		Stats:   stats,
	}
}

// validAllocation checks total volume equality (zero tolerance after
// rounding) and every component's inclusive percentage band
func validAllocation(alloc models.Allocation, targetVolume int, spec models.AlloySpec) bool {
	total := alloc.Volume()
	if math.Round(float64(total)) != math.Round(float64(targetVolume)) {
		return false
	}
	if total == 0 {
		return false
	}

	for _, req := range spec.Components {
		percentage := float64(alloc.VolumeOfType(req.ProducedType)) / float64(total) * 100
		if percentage < req.MinPercent || percentage > req.MaxPercent {
			return false
		}
	}

	return true
}
