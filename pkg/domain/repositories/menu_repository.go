package repositories

import "github.com/vsinha/cafeops/pkg/domain/entities"

// MenuRepository provides access to the menu catalog
type MenuRepository interface {
	GetAll() ([]*entities.MenuItem, error)
	GetByID(id string) (*entities.MenuItem, error)
	GetByCategory(category entities.MenuCategory) ([]*entities.MenuItem, error)
	Insert(item *entities.MenuItem) (*entities.MenuItem, error)
	Update(item *entities.MenuItem) (*entities.MenuItem, error)
	Delete(id string) bool
}
