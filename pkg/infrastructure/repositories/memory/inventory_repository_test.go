package memory

import (
	"testing"

	"github.com/vsinha/cafeops/pkg/domain/entities"
)

func TestInventoryRepository_GetLowStock(t *testing.T) {
	repo := NewInventoryRepository()

	fixtures := []struct {
		name    string
		stock   float64
		reorder float64
	}{
		{"Coffee Beans", 20, 10}, // ok
		{"Milk", 6, 10},          // low
		{"Sugar", 2, 10},         // critical
	}
	for _, f := range fixtures {
		item, err := entities.NewInventoryItem(f.name, f.stock, "kg", f.reorder, "Supplier")
		if err != nil {
			t.Fatalf("Failed to create inventory item: %v", err)
		}
		if _, err := repo.Insert(item); err != nil {
			t.Fatalf("Failed to insert inventory item: %v", err)
		}
	}

	low, err := repo.GetLowStock()
	if err != nil {
		t.Fatalf("Failed to get low stock items: %v", err)
	}
	if len(low) != 2 {
		t.Fatalf("Expected 2 low-stock items, got %d", len(low))
	}
	if low[0].Name != "Milk" || low[1].Name != "Sugar" {
		t.Errorf("Expected Milk and Sugar in insertion order, got %s and %s", low[0].Name, low[1].Name)
	}
}

func TestInventoryRepository_UpdateRoundTrip(t *testing.T) {
	repo := NewInventoryRepository()

	item, err := entities.NewInventoryItem("Milk", 20, "L", 10, "Dairy Farm")
	if err != nil {
		t.Fatalf("Failed to create inventory item: %v", err)
	}
	stored, err := repo.Insert(item)
	if err != nil {
		t.Fatalf("Failed to insert inventory item: %v", err)
	}

	stored.CurrentStock = 4
	stored.Reclassify()
	updated, err := repo.Update(stored)
	if err != nil {
		t.Fatalf("Failed to update inventory item: %v", err)
	}
	if updated.Status != entities.StockCritical {
		t.Errorf("Expected status critical, got %s", updated.Status)
	}

	fetched, err := repo.GetByID(stored.ID)
	if err != nil {
		t.Fatalf("Failed to get inventory item: %v", err)
	}
	if fetched.CurrentStock != 4 {
		t.Errorf("Expected stock 4, got %v", fetched.CurrentStock)
	}
}
