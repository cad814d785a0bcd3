package services

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
)

// MenuService manages the catalog. Orders snapshot menu items at add time,
// so edits here never rewrite order history.
type MenuService struct {
	menu repositories.MenuRepository
}

// NewMenuService creates a menu service
func NewMenuService(menu repositories.MenuRepository) *MenuService {
	return &MenuService{menu: menu}
}

// All returns every menu item
func (s *MenuService) All() ([]*entities.MenuItem, error) {
	return s.menu.GetAll()
}

// ByID returns one menu item, or ErrNotFound
func (s *MenuService) ByID(itemID string) (*entities.MenuItem, error) {
	return s.menu.GetByID(itemID)
}

// ByCategory returns the items in a category
func (s *MenuService) ByCategory(category entities.MenuCategory) ([]*entities.MenuItem, error) {
	return s.menu.GetByCategory(category)
}

// Create adds a new menu item
func (s *MenuService) Create(name, description string, category entities.MenuCategory, price decimal.Decimal, prepTimeMin int, tags []string) (*entities.MenuItem, error) {
	item, err := entities.NewMenuItem(name, category, price, prepTimeMin)
	if err != nil {
		return nil, err
	}
	item.Description = description
	item.Tags = tags
	return s.menu.Insert(item)
}

// Update replaces a menu item
func (s *MenuService) Update(item *entities.MenuItem) (*entities.MenuItem, error) {
	return s.menu.Update(item)
}

// Delete removes a menu item, reporting success
func (s *MenuService) Delete(itemID string) bool {
	return s.menu.Delete(itemID)
}

// ToggleAvailability flips whether an item can be ordered
func (s *MenuService) ToggleAvailability(itemID string) (*entities.MenuItem, error) {
	item, err := s.menu.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	item.Available = !item.Available
	return s.menu.Update(item)
}
