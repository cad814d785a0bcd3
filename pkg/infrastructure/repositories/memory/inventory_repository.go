package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
)

// InventoryRepository provides in-memory inventory storage
type InventoryRepository struct {
	mu   sync.RWMutex
	ids  []string
	byID map[string]*entities.InventoryItem
}

// NewInventoryRepository creates a new in-memory inventory repository
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		byID: make(map[string]*entities.InventoryItem),
	}
}

// Verify interface compliance
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// GetAll returns all inventory items in insertion order
func (r *InventoryRepository) GetAll() ([]*entities.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*entities.InventoryItem, 0, len(r.ids))
	for _, id := range r.ids {
		item := *r.byID[id]
		items = append(items, &item)
	}
	return items, nil
}

// GetByID returns the inventory item with the given id
func (r *InventoryRepository) GetByID(id string) (*entities.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("inventory item %s: %w", id, repositories.ErrNotFound)
	}
	item := *stored
	return &item, nil
}

// GetLowStock returns items classified low or critical
func (r *InventoryRepository) GetLowStock() ([]*entities.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*entities.InventoryItem
	for _, id := range r.ids {
		if r.byID[id].NeedsRestock() {
			item := *r.byID[id]
			items = append(items, &item)
		}
	}
	return items, nil
}

// Insert stores a new inventory item, assigning its identity
func (r *InventoryRepository) Insert(item *entities.InventoryItem) (*entities.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *item
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	r.ids = append(r.ids, stored.ID)
	r.byID[stored.ID] = &stored

	out := stored
	return &out, nil
}

// Update replaces the stored inventory item with the same id
func (r *InventoryRepository) Update(item *entities.InventoryItem) (*entities.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[item.ID]; !exists {
		return nil, fmt.Errorf("inventory item %s: %w", item.ID, repositories.ErrNotFound)
	}
	stored := *item
	r.byID[item.ID] = &stored

	out := stored
	return &out, nil
}

// Delete removes the inventory item with the given id, reporting success
func (r *InventoryRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return false
	}
	delete(r.byID, id)
	for i, stored := range r.ids {
		if stored == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return true
}
