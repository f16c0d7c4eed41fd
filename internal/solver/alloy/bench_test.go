package alloy

import (
	"testing"

	"github.com/napolitain/solver-tfc/internal/models"
)

func benchStock() models.Stock {
	return models.Stock{
		entry("cassiterite-small", "tin", 16, 12),
		entry("cassiterite-poor", "tin", 24, 5),
		entry("copper-small", "copper", 16, 30),
		entry("copper-poor", "copper", 24, 22),
		entry("copper-normal", "copper", 36, 14),
	}
}

func BenchmarkSolveBronzeThreeIngots(b *testing.B) {
	solver := NewSolver()
	stock := benchStock()
	spec := bronzeSpec()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		solver.Solve(432, spec, stock)
	}
}

func BenchmarkSolveBronzeSixIngots(b *testing.B) {
	solver := NewSolver()
	stock := benchStock()
	spec := bronzeSpec()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		solver.Solve(864, spec, stock)
	}
}

func BenchmarkSearchCombinations(b *testing.B) {
	entries := []models.StockEntry{
		entry("copper-normal", "copper", 36, 14),
		entry("copper-poor", "copper", 24, 22),
		entry("copper-small", "copper", 16, 30),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SearchCombinations(entries, 380.16, 397.44)
	}
}
