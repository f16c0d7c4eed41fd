package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func TestLoadStock(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stock.json", `[
		{"name": "tin-ore", "produced_type": "tin", "yield_per_unit": 16, "quantity": 3},
		{"name": "copper-ore", "produced_type": "copper", "yield_per_unit": 24, "quantity": 7}
	]`)

	stock, err := LoadStock(dir)
	if err != nil {
		t.Fatalf("LoadStock failed: %v", err)
	}

	if len(stock) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(stock))
	}
	if stock[0].Mineral.Name != "tin-ore" || stock[0].Quantity != 3 {
		t.Errorf("Unexpected first entry: %+v", stock[0])
	}
	if stock[1].Mineral.YieldPerUnit != 24 {
		t.Errorf("Expected yield 24, got %d", stock[1].Mineral.YieldPerUnit)
	}
}

func TestLoadStockMissingFile(t *testing.T) {
	if _, err := LoadStock(t.TempDir()); err == nil {
		t.Error("Expected error for missing stock.json")
	}
}

func TestLoadStockDuplicateMineral(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stock.json", `[
		{"name": "tin-ore", "produced_type": "tin", "yield_per_unit": 16, "quantity": 3},
		{"name": "tin-ore", "produced_type": "tin", "yield_per_unit": 24, "quantity": 1}
	]`)

	if _, err := LoadStock(dir); err == nil {
		t.Error("Expected error for duplicate mineral name")
	}
}

func TestLoadStockRejectsNonPositiveYield(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stock.json", `[
		{"name": "tin-ore", "produced_type": "tin", "yield_per_unit": 0, "quantity": 3}
	]`)

	if _, err := LoadStock(dir); err == nil {
		t.Error("Expected error for zero yield")
	}
}

func TestLoadAlloys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "alloys.json", `[
		{"name": "Bronze", "components": [
			{"produced_type": "tin", "min_percent": 8, "max_percent": 12},
			{"produced_type": "copper", "min_percent": 88, "max_percent": 92}
		]}
	]`)

	alloys, err := LoadAlloys(dir)
	if err != nil {
		t.Fatalf("LoadAlloys failed: %v", err)
	}

	if len(alloys) != 1 {
		t.Fatalf("Expected 1 alloy, got %d", len(alloys))
	}
	if alloys[0].Name != "Bronze" || len(alloys[0].Components) != 2 {
		t.Errorf("Unexpected alloy: %+v", alloys[0])
	}
}

func TestLoadAlloysMissingFileReturnsDefaults(t *testing.T) {
	alloys, err := LoadAlloys(t.TempDir())
	if err != nil {
		t.Fatalf("Expected defaults for missing alloys.json, got error: %v", err)
	}
	if len(alloys) == 0 {
		t.Error("Expected the built-in default alloys")
	}
}

func TestLoadAlloysRejectsInvalidBand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "alloys.json", `[
		{"name": "Bad", "components": [
			{"produced_type": "tin", "min_percent": 50, "max_percent": 20}
		]}
	]`)

	if _, err := LoadAlloys(dir); err == nil {
		t.Error("Expected error for min > max band")
	}
}

func TestLoadAlloysRejectsEmptyComponents(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "alloys.json", `[{"name": "Empty", "components": []}]`)

	if _, err := LoadAlloys(dir); err == nil {
		t.Error("Expected error for alloy without components")
	}
}

func TestLoadStockInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stock.json", `{not json`)

	if _, err := LoadStock(dir); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}
