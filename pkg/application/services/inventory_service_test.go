package services

import (
	"errors"
	"testing"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
)

func seedInventory(t *testing.T, env *testEnv, name string, stock, reorder float64) *entities.InventoryItem {
	t.Helper()
	item, err := env.inventory.Create(name, stock, "kg", reorder, "Local Supplier")
	if err != nil {
		t.Fatalf("Failed to seed inventory item: %v", err)
	}
	return item
}

func TestInventoryService_AdjustStockReclassifies(t *testing.T) {
	tests := []struct {
		name       string
		stock      float64
		reorder    float64
		delta      float64
		wantStock  float64
		wantStatus entities.StockStatus
	}{
		{"restock clears low", 8, 10, 20, 28, entities.StockOK},
		{"consumption to low", 15, 10, -6, 9, entities.StockLow},
		{"consumption to critical", 15, 10, -11, 4, entities.StockCritical},
		{"exactly reorder level is low", 15, 10, -5, 10, entities.StockLow},
		{"exactly half reorder is critical", 15, 10, -10, 5, entities.StockCritical},
		{"negative stock is critical", 3, 10, -8, -5, entities.StockCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			item := seedInventory(t, env, "Coffee Beans", tt.stock, tt.reorder)

			adjusted, err := env.inventory.AdjustStock(item.ID, tt.delta)
			if err != nil {
				t.Fatalf("Failed to adjust stock: %v", err)
			}
			if adjusted.CurrentStock != tt.wantStock {
				t.Errorf("Expected stock %v, got %v", tt.wantStock, adjusted.CurrentStock)
			}
			if adjusted.Status != tt.wantStatus {
				t.Errorf("Expected status %s, got %s", tt.wantStatus, adjusted.Status)
			}
			if !adjusted.LastUpdated.After(item.LastUpdated) && !adjusted.LastUpdated.Equal(item.LastUpdated) {
				t.Errorf("Expected lastUpdated refreshed")
			}
		})
	}
}

func TestInventoryService_AdjustStockNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.inventory.AdjustStock("missing", 5)
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestInventoryService_UpdateDoesNotReclassify(t *testing.T) {
	env := newTestEnv()
	item := seedInventory(t, env, "Milk", 20, 10)
	if item.Status != entities.StockOK {
		t.Fatalf("Expected seeded item ok, got %s", item.Status)
	}

	// Editing descriptive fields leaves the stored status untouched even
	// when stock and reorder level now disagree with it.
	item.ReorderLevel = 50
	item.Supplier = "Dairy Direct"
	updated, err := env.inventory.Update(item)
	if err != nil {
		t.Fatalf("Failed to update item: %v", err)
	}
	if updated.Status != entities.StockOK {
		t.Errorf("Expected status unchanged by edit, got %s", updated.Status)
	}

	// The next stock adjustment reconciles against the new reorder level.
	adjusted, err := env.inventory.AdjustStock(item.ID, 0)
	if err != nil {
		t.Fatalf("Failed to adjust stock: %v", err)
	}
	if adjusted.Status != entities.StockCritical {
		t.Errorf("Expected critical after reclassify, got %s", adjusted.Status)
	}
}

func TestInventoryService_LowStock(t *testing.T) {
	env := newTestEnv()
	seedInventory(t, env, "Coffee Beans", 50, 10)
	low := seedInventory(t, env, "Milk", 9, 10)
	critical := seedInventory(t, env, "Sugar", 2, 10)

	items, err := env.inventory.LowStock()
	if err != nil {
		t.Fatalf("Failed to list low stock: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items needing restock, got %d", len(items))
	}
	if items[0].ID != low.ID || items[1].ID != critical.ID {
		t.Errorf("Expected low stock list in insertion order, got %s, %s", items[0].Name, items[1].Name)
	}
}

func TestInventoryService_CreateValidation(t *testing.T) {
	env := newTestEnv()

	if _, err := env.inventory.Create("", 5, "kg", 10, ""); err == nil {
		t.Errorf("Expected error for empty name")
	}
	if _, err := env.inventory.Create("Flour", 5, "", 10, ""); err == nil {
		t.Errorf("Expected error for empty unit")
	}
	if _, err := env.inventory.Create("Flour", 5, "kg", -1, ""); err == nil {
		t.Errorf("Expected error for negative reorder level")
	}
}

func TestInventoryService_Delete(t *testing.T) {
	env := newTestEnv()
	item := seedInventory(t, env, "Napkins", 100, 20)

	if !env.inventory.Delete(item.ID) {
		t.Fatalf("Expected delete to succeed")
	}
	if env.inventory.Delete(item.ID) {
		t.Errorf("Expected second delete to report false")
	}
	if _, err := env.inventory.ByID(item.ID); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}
