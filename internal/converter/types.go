// Package converter provides conversions between metal volume (mB) and
// physical output units (ingots, nuggets)
package converter

import "fmt"

// Volume units per physical item
const (
	MBPerIngot  = 144
	MBPerNugget = 16
)

// IngotsToMB converts a number of ingots to millibuckets
func IngotsToMB(ingots int) int {
	return ingots * MBPerIngot
}

// MBToIngots returns full ingots and the leftover mB
func MBToIngots(mb int) (ingots int, remainder int) {
	if mb <= 0 {
		return 0, 0
	}
	return mb / MBPerIngot, mb % MBPerIngot
}

// NuggetsToMB converts a number of nuggets to millibuckets
func NuggetsToMB(nuggets int) int {
	return nuggets * MBPerNugget
}

// FormatVolume renders a volume as ingots plus leftover mB, e.g. "3 ingots + 12 mB"
func FormatVolume(mb int) string {
	ingots, rem := MBToIngots(mb)
	switch {
	case ingots == 0:
		return fmt.Sprintf("%d mB", mb)
	case rem == 0 && ingots == 1:
		return "1 ingot"
	case rem == 0:
		return fmt.Sprintf("%d ingots", ingots)
	case ingots == 1:
		return fmt.Sprintf("1 ingot + %d mB", rem)
	default:
		return fmt.Sprintf("%d ingots + %d mB", ingots, rem)
	}
}
