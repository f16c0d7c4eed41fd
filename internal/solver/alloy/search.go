package alloy

import (
	"github.com/napolitain/solver-tfc/internal/models"
)

// searchState is one partial selection on the DFS work list
type searchState struct {
	selection models.Allocation
	index     int
	volume    int
}

// SearchResult holds the accepted combinations for one component interval
// plus the search counters
type SearchResult struct {
	Combinations []models.Allocation
	Runs         int // states popped
	Accepts      int // states inside the interval
	Declines     int // states outside the interval
}

// SearchCombinations enumerates every quantity combination over the given
// entries whose total yielded volume lies inside the closed interval
// [minVolume, maxVolume]. The depth-first search uses an explicit stack
// instead of recursion so degenerate inputs (many mineral variants with
// large quantities) cannot overflow the call stack.
//
// Combinations are returned in pop order: the highest quantities of the
// highest-yield entries come first, which is what makes the assembler's
// first-combination-wins heuristic prefer rich minerals.
func SearchCombinations(entries []models.StockEntry, minVolume, maxVolume float64) SearchResult {
	var result SearchResult
	if maxVolume < minVolume {
		return result
	}

	stack := []searchState{{index: 0, volume: 0}}

	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result.Runs++

		if float64(state.volume) >= minVolume && float64(state.volume) <= maxVolume {
			result.Accepts++
			result.Combinations = append(result.Combinations, state.selection)
		} else {
			result.Declines++
		}

		if state.index >= len(entries) || float64(state.volume) > maxVolume {
			continue
		}

		entry := entries[state.index]
		for qty := 0; qty <= entry.Quantity; qty++ {
			volume := state.volume + qty*entry.Mineral.YieldPerUnit
			// Yield is positive, so volume grows monotonically with
			// quantity: one overshoot ends the whole range.
			if float64(volume) > maxVolume {
				break
			}
			stack = append(stack, searchState{
				selection: state.selection.Clone().Add(entry.Mineral, qty),
				index:     state.index + 1,
				volume:    volume,
			})
		}
	}

	return result
}
