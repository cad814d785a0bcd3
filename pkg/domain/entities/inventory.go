package entities

import (
	"fmt"
	"time"
)

// StockStatus classifies how urgently an inventory item needs restocking
type StockStatus string

const (
	StockOK       StockStatus = "ok"
	StockLow      StockStatus = "low"
	StockCritical StockStatus = "critical"
)

// ClassifyStock derives the stock status from current stock against the
// reorder level. Thresholds are evaluated in order: at or below half the
// reorder level is critical, at or below the reorder level is low. Negative
// stock is valid input and classifies as critical.
func ClassifyStock(currentStock, reorderLevel float64) StockStatus {
	switch {
	case currentStock <= reorderLevel*0.5:
		return StockCritical
	case currentStock <= reorderLevel:
		return StockLow
	default:
		return StockOK
	}
}

// InventoryItem represents a stocked ingredient or supply. Status is derived
// from CurrentStock and ReorderLevel; every stock mutation must reclassify.
type InventoryItem struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	CurrentStock float64     `json:"current_stock"`
	Unit         string      `json:"unit"`
	ReorderLevel float64     `json:"reorder_level"`
	Supplier     string      `json:"supplier"`
	Status       StockStatus `json:"status"`
	LastUpdated  time.Time   `json:"last_updated"`
}

// NewInventoryItem creates a validated InventoryItem with a derived status
func NewInventoryItem(name string, currentStock float64, unit string, reorderLevel float64, supplier string) (*InventoryItem, error) {
	if name == "" {
		return nil, fmt.Errorf("inventory item name cannot be empty")
	}
	if unit == "" {
		return nil, fmt.Errorf("inventory item unit cannot be empty")
	}
	if reorderLevel < 0 {
		return nil, fmt.Errorf("reorder level cannot be negative, got %v", reorderLevel)
	}

	return &InventoryItem{
		Name:         name,
		CurrentStock: currentStock,
		Unit:         unit,
		ReorderLevel: reorderLevel,
		Supplier:     supplier,
		Status:       ClassifyStock(currentStock, reorderLevel),
		LastUpdated:  time.Now(),
	}, nil
}

// Reclassify re-derives the stock status from the current stock level
func (i *InventoryItem) Reclassify() {
	i.Status = ClassifyStock(i.CurrentStock, i.ReorderLevel)
}

// NeedsRestock reports whether the item is low or critical
func (i *InventoryItem) NeedsRestock() bool {
	return i.Status == StockLow || i.Status == StockCritical
}
