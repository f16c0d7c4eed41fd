package alloy

import (
	"testing"

	"github.com/napolitain/solver-tfc/internal/models"
)

func TestScaleBatchTriples(t *testing.T) {
	batch := models.BatchResult{
		Success:      true,
		OutputVolume: 432,
		Allocation: models.Allocation{}.
			Add(mineral("tin-ore", "tin", 16), 3).
			Add(mineral("copper-ore", "copper", 24), 16),
	}
	stock := models.Stock{
		entry("tin-ore", "tin", 16, 9),
		entry("copper-ore", "copper", 24, 48),
	}

	scaled, factor := ScaleBatch(batch, stock)

	if factor != 3 {
		t.Fatalf("Expected factor 3, got %d", factor)
	}
	if scaled.OutputVolume != 1296 {
		t.Errorf("Expected output 1296, got %d", scaled.OutputVolume)
	}
	if q := scaled.Allocation.QuantityOf("tin-ore"); q != 9 {
		t.Errorf("Expected tin-ore 9, got %d", q)
	}
	if q := scaled.Allocation.QuantityOf("copper-ore"); q != 48 {
		t.Errorf("Expected copper-ore 48, got %d", q)
	}
}

func TestScaleBatchFactorOneUnchanged(t *testing.T) {
	batch := models.BatchResult{
		Success:      true,
		OutputVolume: 432,
		Allocation:   models.Allocation{}.Add(mineral("tin-ore", "tin", 16), 3),
	}
	stock := models.Stock{entry("tin-ore", "tin", 16, 5)} // 5/3 floors to 1

	scaled, factor := ScaleBatch(batch, stock)

	if factor != 1 {
		t.Fatalf("Expected factor 1, got %d", factor)
	}
	if scaled.OutputVolume != 432 {
		t.Errorf("Expected output unchanged at 432, got %d", scaled.OutputVolume)
	}
}

func TestScaleBatchEmptyAllocation(t *testing.T) {
	batch := models.BatchResult{Success: true, OutputVolume: 0}

	scaled, factor := ScaleBatch(batch, exactFitStock())

	if factor != 1 {
		t.Errorf("Expected factor 1 for empty allocation, got %d", factor)
	}
	if scaled.OutputVolume != 0 {
		t.Errorf("Expected output unchanged, got %d", scaled.OutputVolume)
	}
}

func TestScaleBatchDoesNotMutateOriginal(t *testing.T) {
	original := models.Allocation{}.Add(mineral("tin-ore", "tin", 16), 3)
	batch := models.BatchResult{Success: true, OutputVolume: 48, Allocation: original}
	stock := models.Stock{entry("tin-ore", "tin", 16, 9)}

	_, factor := ScaleBatch(batch, stock)

	if factor != 3 {
		t.Fatalf("Expected factor 3, got %d", factor)
	}
	if q := original.QuantityOf("tin-ore"); q != 3 {
		t.Errorf("Original allocation mutated: tin-ore %d", q)
	}
}
