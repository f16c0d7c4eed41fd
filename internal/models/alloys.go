package models

import (
	"math"
	"strings"
)

// DefaultAlloys returns the built-in alloy specifications (hardcoded from game data)
func DefaultAlloys() []AlloySpec {
	return []AlloySpec{
		{
			Name: "Bronze",
			Components: []ComponentRequirement{
				{ProducedType: "tin", MinPercent: 8, MaxPercent: 12},
				{ProducedType: "copper", MinPercent: 88, MaxPercent: 92},
			},
		},
		{
			Name: "Bismuth Bronze",
			Components: []ComponentRequirement{
				{ProducedType: "bismuth", MinPercent: 10, MaxPercent: 20},
				{ProducedType: "zinc", MinPercent: 20, MaxPercent: 30},
				{ProducedType: "copper", MinPercent: 50, MaxPercent: 65},
			},
		},
		{
			Name: "Black Bronze",
			Components: []ComponentRequirement{
				{ProducedType: "silver", MinPercent: 10, MaxPercent: 25},
				{ProducedType: "gold", MinPercent: 10, MaxPercent: 25},
				{ProducedType: "copper", MinPercent: 50, MaxPercent: 70},
			},
		},
		{
			Name: "Brass",
			Components: []ComponentRequirement{
				{ProducedType: "zinc", MinPercent: 8, MaxPercent: 12},
				{ProducedType: "copper", MinPercent: 88, MaxPercent: 92},
			},
		},
		{
			Name: "Rose Gold",
			Components: []ComponentRequirement{
				{ProducedType: "copper", MinPercent: 15, MaxPercent: 30},
				{ProducedType: "gold", MinPercent: 70, MaxPercent: 85},
			},
		},
		{
			Name: "Sterling Silver",
			Components: []ComponentRequirement{
				{ProducedType: "copper", MinPercent: 20, MaxPercent: 40},
				{ProducedType: "silver", MinPercent: 60, MaxPercent: 80},
			},
		},
	}
}

// GetAlloy looks up a built-in alloy by name (case-insensitive)
func GetAlloy(name string) (AlloySpec, bool) {
	for _, a := range DefaultAlloys() {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return AlloySpec{}, false
}

// DefaultPercentages returns the midpoint of each component's band,
// adjusted so the values sum to exactly 100. The adjustment goes on
// the first component.
func (a AlloySpec) DefaultPercentages() map[string]float64 {
	percentages := make(map[string]float64, len(a.Components))
	if len(a.Components) == 0 {
		return percentages
	}

	total := 0.0
	for _, c := range a.Components {
		mid := (c.MinPercent + c.MaxPercent) / 2.0
		percentages[c.ProducedTypeKey()] = mid
		total += mid
	}

	if math.Abs(total-100.0) > 0.01 {
		percentages[a.Components[0].ProducedTypeKey()] += 100.0 - total
	}

	return percentages
}
