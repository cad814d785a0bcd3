package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
)

// PurchaseOrderRepository provides in-memory purchase order storage
type PurchaseOrderRepository struct {
	mu   sync.RWMutex
	ids  []string
	byID map[string]*entities.PurchaseOrder
}

// NewPurchaseOrderRepository creates a new in-memory purchase order repository
func NewPurchaseOrderRepository() *PurchaseOrderRepository {
	return &PurchaseOrderRepository{
		byID: make(map[string]*entities.PurchaseOrder),
	}
}

// Verify interface compliance
var _ repositories.PurchaseOrderRepository = (*PurchaseOrderRepository)(nil)

// GetAll returns all purchase orders in insertion order
func (r *PurchaseOrderRepository) GetAll() ([]*entities.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*entities.PurchaseOrder, 0, len(r.ids))
	for _, id := range r.ids {
		po := r.byID[id].Clone()
		orders = append(orders, &po)
	}
	return orders, nil
}

// GetByID returns the purchase order with the given id
func (r *PurchaseOrderRepository) GetByID(id string) (*entities.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("purchase order %s: %w", id, repositories.ErrNotFound)
	}
	po := stored.Clone()
	return &po, nil
}

// Insert stores a new purchase order, assigning its identity
func (r *PurchaseOrderRepository) Insert(po *entities.PurchaseOrder) (*entities.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := po.Clone()
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	r.ids = append(r.ids, stored.ID)
	r.byID[stored.ID] = &stored

	out := stored.Clone()
	return &out, nil
}

// Update replaces the stored purchase order with the same id
func (r *PurchaseOrderRepository) Update(po *entities.PurchaseOrder) (*entities.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[po.ID]; !exists {
		return nil, fmt.Errorf("purchase order %s: %w", po.ID, repositories.ErrNotFound)
	}
	stored := po.Clone()
	r.byID[po.ID] = &stored

	out := stored.Clone()
	return &out, nil
}
