package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
)

// OrderRepository provides in-memory order storage
type OrderRepository struct {
	mu   sync.RWMutex
	ids  []string
	byID map[string]*entities.Order
}

// NewOrderRepository creates a new in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		byID: make(map[string]*entities.Order),
	}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// GetAll returns all orders in insertion order
func (r *OrderRepository) GetAll() ([]*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*entities.Order, 0, len(r.ids))
	for _, id := range r.ids {
		order := r.byID[id].Clone()
		orders = append(orders, &order)
	}
	return orders, nil
}

// GetByID returns the order with the given id
func (r *OrderRepository) GetByID(id string) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("order %s: %w", id, repositories.ErrNotFound)
	}
	order := stored.Clone()
	return &order, nil
}

// GetByStatus returns all orders with the given status
func (r *OrderRepository) GetByStatus(status entities.OrderStatus) ([]*entities.Order, error) {
	return r.filter(func(o *entities.Order) bool { return o.Status == status })
}

// GetByTable returns all orders linked to the given table
func (r *OrderRepository) GetByTable(tableID string) ([]*entities.Order, error) {
	return r.filter(func(o *entities.Order) bool { return o.TableID == tableID })
}

// GetActive returns orders still in the kitchen workflow
func (r *OrderRepository) GetActive() ([]*entities.Order, error) {
	return r.filter(func(o *entities.Order) bool { return o.Status.Active() })
}

func (r *OrderRepository) filter(keep func(*entities.Order) bool) ([]*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []*entities.Order
	for _, id := range r.ids {
		if keep(r.byID[id]) {
			order := r.byID[id].Clone()
			orders = append(orders, &order)
		}
	}
	return orders, nil
}

// Insert stores a new order, assigning its identity
func (r *OrderRepository) Insert(order *entities.Order) (*entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := order.Clone()
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	r.ids = append(r.ids, stored.ID)
	r.byID[stored.ID] = &stored

	out := stored.Clone()
	return &out, nil
}

// Update replaces the stored order with the same id
func (r *OrderRepository) Update(order *entities.Order) (*entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[order.ID]; !exists {
		return nil, fmt.Errorf("order %s: %w", order.ID, repositories.ErrNotFound)
	}
	stored := order.Clone()
	r.byID[order.ID] = &stored

	out := stored.Clone()
	return &out, nil
}

// Delete removes the order with the given id, reporting success
func (r *OrderRepository) Delete(id string) bool {
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
