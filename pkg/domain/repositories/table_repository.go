package repositories

import "github.com/vsinha/cafeops/pkg/domain/entities"

// TableRepository provides access to the table floor plan
type TableRepository interface {
	GetAll() ([]*entities.Table, error)
	GetByID(id string) (*entities.Table, error)
	GetAvailable() ([]*entities.Table, error)
	Insert(table *entities.Table) (*entities.Table, error)
	Update(table *entities.Table) (*entities.Table, error)
	// SetStatus updates occupancy in one step. An empty orderID clears the
	// table's order link.
	SetStatus(id string, status entities.TableStatus, orderID string) (*entities.Table, error)
}
