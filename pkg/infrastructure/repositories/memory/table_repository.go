package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
)

// TableRepository provides in-memory table storage
type TableRepository struct {
	mu   sync.RWMutex
	ids  []string
	byID map[string]*entities.Table
}

// NewTableRepository creates a new in-memory table repository
func NewTableRepository() *TableRepository {
	return &TableRepository{
		byID: make(map[string]*entities.Table),
	}
}

// Verify interface compliance
var _ repositories.TableRepository = (*TableRepository)(nil)

// GetAll returns all tables in insertion order
func (r *TableRepository) GetAll() ([]*entities.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tables := make([]*entities.Table, 0, len(r.ids))
	for _, id := range r.ids {
		table := *r.byID[id]
		tables = append(tables, &table)
	}
	return tables, nil
}

// GetByID returns the table with the given id
func (r *TableRepository) GetByID(id string) (*entities.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("table %s: %w", id, repositories.ErrNotFound)
	}
	table := *stored
	return &table, nil
}

// GetAvailable returns all free tables
func (r *TableRepository) GetAvailable() ([]*entities.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tables []*entities.Table
	for _, id := range r.ids {
		if r.byID[id].Status == entities.TableFree {
			table := *r.byID[id]
			tables = append(tables, &table)
		}
	}
	return tables, nil
}

// Insert stores a new table, assigning its identity
func (r *TableRepository) Insert(table *entities.Table) (*entities.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *table
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	r.ids = append(r.ids, stored.ID)
	r.byID[stored.ID] = &stored

	out := stored
	return &out, nil
}

// Update replaces the stored table with the same id
func (r *TableRepository) Update(table *entities.Table) (*entities.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[table.ID]; !exists {
		return nil, fmt.Errorf("table %s: %w", table.ID, repositories.ErrNotFound)
	}
	stored := *table
	r.byID[table.ID] = &stored

	out := stored
	return &out, nil
}

// SetStatus updates a table's occupancy and order link in one step
func (r *TableRepository) SetStatus(id string, status entities.TableStatus, orderID string) (*entities.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("table %s: %w", id, repositories.ErrNotFound)
	}
	stored.Status = status
	stored.CurrentOrderID = orderID

	out := *stored
	return &out, nil
}
