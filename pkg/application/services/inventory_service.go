package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
	"github.com/vsinha/cafeops/pkg/infrastructure/events"
)

// InventoryService owns stock levels and the derived stock-status
// classification. Stock has no lower bound: adjustments may drive it
// negative, which simply classifies as critical.
type InventoryService struct {
	inventory repositories.InventoryRepository
	events    *events.InMemoryEventStore
	logger    *zap.Logger
}

// NewInventoryService creates an inventory service
func NewInventoryService(inventory repositories.InventoryRepository, store *events.InMemoryEventStore, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		inventory: inventory,
		events:    store,
		logger:    logger,
	}
}

// All returns every inventory item
func (s *InventoryService) All() ([]*entities.InventoryItem, error) {
	return s.inventory.GetAll()
}

// ByID returns one inventory item, or ErrNotFound
func (s *InventoryService) ByID(itemID string) (*entities.InventoryItem, error) {
	return s.inventory.GetByID(itemID)
}

// LowStock returns items classified low or critical
func (s *InventoryService) LowStock() ([]*entities.InventoryItem, error) {
	return s.inventory.GetLowStock()
}

// AdjustStock adds delta (positive or negative) to an item's stock,
// refreshes lastUpdated and reclassifies its status
func (s *InventoryService) AdjustStock(itemID string, delta float64) (*entities.InventoryItem, error) {
	item, err := s.inventory.GetByID(itemID)
	if err != nil {
		return nil, err
	}

	item.CurrentStock += delta
	item.LastUpdated = time.Now()
	item.Reclassify()

	updated, err := s.inventory.Update(item)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock for %s: %w", itemID, err)
	}

	_ = s.events.AppendEvent(updated.ID, events.NewInventoryAdjustedEvent(*updated, delta))
	s.logger.Info("stock adjusted",
		zap.String("item_id", updated.ID),
		zap.Float64("delta", delta),
		zap.Float64("stock", updated.CurrentStock),
		zap.String("status", string(updated.Status)))
	return updated, nil
}

// Create adds a new inventory item with a derived status
func (s *InventoryService) Create(name string, currentStock float64, unit string, reorderLevel float64, supplier string) (*entities.InventoryItem, error) {
	item, err := entities.NewInventoryItem(name, currentStock, unit, reorderLevel, supplier)
	if err != nil {
		return nil, err
	}
	return s.inventory.Insert(item)
}

// Update replaces an item's descriptive fields and refreshes lastUpdated.
// Status is left as stored; only stock adjustments reclassify.
func (s *InventoryService) Update(item *entities.InventoryItem) (*entities.InventoryItem, error) {
	item.LastUpdated = time.Now()
	return s.inventory.Update(item)
}

// Delete removes an inventory item, reporting success
func (s *InventoryService) Delete(itemID string) bool {
	return s.inventory.Delete(itemID)
}
