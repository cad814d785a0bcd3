package repositories

import "github.com/vsinha/cafeops/pkg/domain/entities"

// InventoryRepository provides access to stocked items
type InventoryRepository interface {
	GetAll() ([]*entities.InventoryItem, error)
	GetByID(id string) (*entities.InventoryItem, error)
	// GetLowStock returns items classified low or critical.
	GetLowStock() ([]*entities.InventoryItem, error)
	Insert(item *entities.InventoryItem) (*entities.InventoryItem, error)
	Update(item *entities.InventoryItem) (*entities.InventoryItem, error)
	Delete(id string) bool
}
