package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MenuCategory classifies a menu item for display and reporting
type MenuCategory string

const (
	CategoryCoffee     MenuCategory = "Coffee"
	CategoryTea        MenuCategory = "Tea"
	CategoryBakery     MenuCategory = "Bakery"
	CategorySandwiches MenuCategory = "Sandwiches"
	CategorySpecials   MenuCategory = "Specials"
)

// MenuCategories lists every valid category in display order
var MenuCategories = []MenuCategory{
	CategoryCoffee,
	CategoryTea,
	CategoryBakery,
	CategorySandwiches,
	CategorySpecials,
}

// Valid reports whether the category is one of the known values
func (c MenuCategory) Valid() bool {
	for _, known := range MenuCategories {
		if c == known {
			return true
		}
	}
	return false
}

// MenuItem represents a catalog entry. Orders embed a copy of the item at the
// moment it is added, so later catalog edits never rewrite order history.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    MenuCategory    `json:"category"`
	Price       decimal.Decimal `json:"price"`
	PrepTimeMin int             `json:"prep_time_min"`
	Available   bool            `json:"available"`
	Tags        []string        `json:"tags,omitempty"`
}

// NewMenuItem creates a validated MenuItem
func NewMenuItem(name string, category MenuCategory, price decimal.Decimal, prepTimeMin int) (*MenuItem, error) {
	if name == "" {
		return nil, fmt.Errorf("menu item name cannot be empty")
	}
	if !category.Valid() {
		return nil, fmt.Errorf("unknown menu category: %s", category)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative, got %s", price)
	}
	if prepTimeMin < 0 {
		return nil, fmt.Errorf("prep time cannot be negative, got %d", prepTimeMin)
	}

	return &MenuItem{
		Name:        name,
		Category:    category,
		Price:       price,
		PrepTimeMin: prepTimeMin,
		Available:   true,
	}, nil
}

// Clone returns an independent copy of the menu item
func (m MenuItem) Clone() MenuItem {
	out := m
	if m.Tags != nil {
		out.Tags = make([]string, len(m.Tags))
		copy(out.Tags, m.Tags)
	}
	return out
}
