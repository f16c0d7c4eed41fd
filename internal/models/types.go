package models

import "strings"

// Mineral represents one raw material that can be smelted
type Mineral struct {
	Name         string // unique identity, e.g. "copper-ore-rich"
	ProducedType string // metal it yields, e.g. "copper" (matched case-insensitively)
	YieldPerUnit int    // mB of metal produced per unit consumed
}

// ProducedTypeKey returns the normalized produced type used for grouping
func (m Mineral) ProducedTypeKey() string {
	return strings.ToLower(m.ProducedType)
}

// StockEntry pairs a mineral with the quantity available
type StockEntry struct {
	Mineral  Mineral
	Quantity int
}

// Volume returns the total mB this entry can yield
func (e StockEntry) Volume() int {
	return e.Quantity * e.Mineral.YieldPerUnit
}

// Stock is the caller-owned inventory of raw materials.
// Mineral names are unique within one stock.
type Stock []StockEntry

// TotalVolume returns the total mB the whole stock can yield
func (s Stock) TotalVolume() int {
	total := 0
	for _, e := range s {
		total += e.Volume()
	}
	return total
}

// QuantityOf returns the available quantity for a mineral name, 0 if absent
func (s Stock) QuantityOf(name string) int {
	for _, e := range s {
		if e.Mineral.Name == name {
			return e.Quantity
		}
	}
	return 0
}

// ComponentRequirement is one percentage band of an alloy specification
type ComponentRequirement struct {
	ProducedType string
	MinPercent   float64
	MaxPercent   float64
}

// ProducedTypeKey returns the normalized produced type used for matching
func (r ComponentRequirement) ProducedTypeKey() string {
	return strings.ToLower(r.ProducedType)
}

// AlloySpec names an alloy and its component percentage bands
type AlloySpec struct {
	Name       string
	Components []ComponentRequirement
}

// AllocationEntry records how much of one mineral a solution consumes
type AllocationEntry struct {
	Mineral  Mineral
	Quantity int
}

// Allocation is a consolidated quantity-per-mineral consumption result.
// Entries keep insertion order; Add merges by mineral identity.
type Allocation []AllocationEntry

// Add merges qty units of a mineral into the allocation
func (a Allocation) Add(m Mineral, qty int) Allocation {
	if qty == 0 {
		return a
	}
	for i := range a {
		if a[i].Mineral.Name == m.Name {
			a[i].Quantity += qty
			return a
		}
	}
	return append(a, AllocationEntry{Mineral: m, Quantity: qty})
}

// Merge folds another allocation into this one, summing per identity
func (a Allocation) Merge(other Allocation) Allocation {
	for _, e := range other {
		a = a.Add(e.Mineral, e.Quantity)
	}
	return a
}

// Volume returns the total mB the allocation yields
func (a Allocation) Volume() int {
	total := 0
	for _, e := range a {
		total += e.Quantity * e.Mineral.YieldPerUnit
	}
	return total
}

// VolumeOfType returns the mB contributed by one produced type
func (a Allocation) VolumeOfType(producedType string) int {
	key := strings.ToLower(producedType)
	total := 0
	for _, e := range a {
		if e.Mineral.ProducedTypeKey() == key {
			total += e.Quantity * e.Mineral.YieldPerUnit
		}
	}
	return total
}

// QuantityOf returns the consumed quantity for a mineral name, 0 if absent
func (a Allocation) QuantityOf(name string) int {
	for _, e := range a {
		if e.Mineral.Name == name {
			return e.Quantity
		}
	}
	return 0
}

// Clone returns an independent copy of the allocation
func (a Allocation) Clone() Allocation {
	out := make(Allocation, len(a))
	copy(out, a)
	return out
}

// FailureReason classifies why a solve or batch attempt failed
type FailureReason string

const (
	FailureNone                          FailureReason = ""
	FailureInsufficientTotalMaterial     FailureReason = "insufficient_total_material"
	FailureInsufficientComponentMaterial FailureReason = "insufficient_component_material"
	FailureNoCombinationForComponent     FailureReason = "no_combination_for_component"
	FailureNoGlobalCombination           FailureReason = "no_global_combination"
	FailureNoValidCombinationFound       FailureReason = "no_valid_combination_found"
)

// SolveStats aggregates search counters across one solve call
type SolveStats struct {
	GenerationRuns     int // states popped across all component searches
	GenerationAccepts  int // combinations inside their interval
	GenerationDeclines int // states outside their interval

	BatchCount    int // batch sizes attempted
	BatchAccepts  int // batches accepted
	BatchDeclines int // batch attempts that failed

	ScaleEfficiency    int // physical batches gained by scaling accepted batches
	BacktrackPotential int // failed attempts after at least one accepted batch

	ElapsedTimeMs float64
	MemoryDeltaMB float64
}

// AddGeneration folds the search counters of another stats value into
// this one. Batch-level counters are owned by the solve loop and are
// never folded.
func (s *SolveStats) AddGeneration(other SolveStats) {
	s.GenerationRuns += other.GenerationRuns
	s.GenerationAccepts += other.GenerationAccepts
	s.GenerationDeclines += other.GenerationDeclines
}

// BatchResult is the outcome of one batch assembly attempt
type BatchResult struct {
	Success      bool
	OutputVolume int
	Allocation   Allocation
	Reason       FailureReason
	Message      string
	Stats        SolveStats
}

// SolveResult is the outcome of one whole-target solve
type SolveResult struct {
	Success      bool
	OutputVolume int
	Allocation   Allocation
	Reason       FailureReason
	Message      string
	Stats        SolveStats
}
