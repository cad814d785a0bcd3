// Package memory provides the in-memory repository implementations backing
// the dashboard. Each repository assigns uuid identity on insert, keeps
// records in insertion order, and returns copies so callers can only change
// stored state through Update. A RWMutex per repository keeps the "one
// logical writer at a time" discipline when the HTTP layer calls in from
// multiple goroutines. Nothing is durable; state resets on restart.
package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
)

// MenuRepository provides in-memory menu catalog storage
type MenuRepository struct {
	mu   sync.RWMutex
	ids  []string
	byID map[string]*entities.MenuItem
}

// NewMenuRepository creates a new in-memory menu repository
func NewMenuRepository() *MenuRepository {
	return &MenuRepository{
		byID: make(map[string]*entities.MenuItem),
	}
}

// Verify interface compliance
var _ repositories.MenuRepository = (*MenuRepository)(nil)

// GetAll returns all menu items in insertion order
func (r *MenuRepository) GetAll() ([]*entities.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*entities.MenuItem, 0, len(r.ids))
	for _, id := range r.ids {
		item := r.byID[id].Clone()
		items = append(items, &item)
	}
	return items, nil
}

// GetByID returns the menu item with the given id
func (r *MenuRepository) GetByID(id string) (*entities.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("menu item %s: %w", id, repositories.ErrNotFound)
	}
	item := stored.Clone()
	return &item, nil
}

// GetByCategory returns all menu items in the given category
func (r *MenuRepository) GetByCategory(category entities.MenuCategory) ([]*entities.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*entities.MenuItem
	for _, id := range r.ids {
		if r.byID[id].Category == category {
			item := r.byID[id].Clone()
			items = append(items, &item)
		}
	}
	return items, nil
}

// Insert stores a new menu item, assigning its identity
func (r *MenuRepository) Insert(item *entities.MenuItem) (*entities.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := item.Clone()
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	r.ids = append(r.ids, stored.ID)
	r.byID[stored.ID] = &stored

	out := stored.Clone()
	return &out, nil
}

// Update replaces the stored menu item with the same id
func (r *MenuRepository) Update(item *entities.MenuItem) (*entities.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[item.ID]; !exists {
		return nil, fmt.Errorf("menu item %s: %w", item.ID, repositories.ErrNotFound)
	}
	stored := item.Clone()
	r.byID[item.ID] = &stored

	out := stored.Clone()
	return &out, nil
}

// Delete removes the menu item with the given id, reporting success
func (r *MenuRepository) Delete(id string) bool {
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
