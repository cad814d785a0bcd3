package repositories

import "github.com/vsinha/cafeops/pkg/domain/entities"

// OrderRepository provides access to the order collection
type OrderRepository interface {
	GetAll() ([]*entities.Order, error)
	GetByID(id string) (*entities.Order, error)
	GetByStatus(status entities.OrderStatus) ([]*entities.Order, error)
	GetByTable(tableID string) ([]*entities.Order, error)
	// GetActive returns orders still in the kitchen workflow
	// (queued, in-progress, ready).
	GetActive() ([]*entities.Order, error)
	Insert(order *entities.Order) (*entities.Order, error)
	Update(order *entities.Order) (*entities.Order, error)
	Delete(id string) bool
}
