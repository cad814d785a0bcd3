package services

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
)

// CartService maintains the in-progress order for each session: at most one
// cart per session, created empty on first use, cleared after a successful
// checkout, never persisted. Every mutation re-derives line subtotals and
// cart totals through the pricing engine, preserving the cart's global
// discount percentage. All returned carts are copies.
type CartService struct {
	mu     sync.Mutex
	carts  map[string]*entities.Cart
	menu   repositories.MenuRepository
	orders *OrderService
	taxPct float64
	logger *zap.Logger
}

// NewCartService creates a cart service charging the given tax percentage
func NewCartService(menu repositories.MenuRepository, orders *OrderService, taxPct float64, logger *zap.Logger) *CartService {
	return &CartService{
		carts:  make(map[string]*entities.Cart),
		menu:   menu,
		orders: orders,
		taxPct: taxPct,
		logger: logger,
	}
}

// cart returns the session's cart, creating an empty one on first use.
// Callers must hold the mutex.
func (s *CartService) cart(sessionID string) *entities.Cart {
	c, exists := s.carts[sessionID]
	if !exists {
		c = entities.NewCart()
		s.carts[sessionID] = c
	}
	return c
}

func (s *CartService) recompute(c *entities.Cart) {
	totals := CalculateTotals(c.Items, c.DiscountPct, s.taxPct)
	c.Subtotal = totals.Subtotal
	c.Discount = totals.Discount
	c.Tax = totals.Tax
	c.Total = totals.Total
}

// Get returns the session's current cart
func (s *CartService) Get(sessionID string) *entities.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID).Clone()
	return &cart
}

// SetTable replaces the cart's table reference. An empty tableID means
// takeaway. Items and totals are untouched.
func (s *CartService) SetTable(sessionID, tableID string) *entities.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	c.TableID = tableID

	cart := c.Clone()
	return &cart
}

// AddItem adds quantity of a menu item to the cart. When a line for the same
// menu item exists and carries no note, its quantity is incremented instead
// of appending; lines with notes always stay separate. The menu item is
// snapshotted into the line, so later catalog edits do not reach the cart.
func (s *CartService) AddItem(sessionID, menuItemID string, quantity int) (*entities.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}

	menuItem, err := s.menu.GetByID(menuItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to add item to cart: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)

	merged := false
	for i := range c.Items {
		if c.Items[i].MenuItem.ID == menuItemID && c.Items[i].Notes == "" {
			c.Items[i].Quantity += quantity
			c.Items[i].Recalculate()
			merged = true
			break
		}
	}
	if !merged {
		line, err := entities.NewLineItem(*menuItem, quantity)
		if err != nil {
			return nil, err
		}
		line.ID = uuid.NewString()
		c.Items = append(c.Items, *line)
	}

	s.recompute(c)
	cart := c.Clone()
	return &cart, nil
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less removes
// the line.
func (s *CartService) UpdateQuantity(sessionID, lineID string, quantity int) (*entities.Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(sessionID, lineID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	i := c.FindLine(lineID)
	if i < 0 {
		return nil, fmt.Errorf("cart line %s: %w", lineID, repositories.ErrNotFound)
	}
	c.Items[i].Quantity = quantity
	c.Items[i].Recalculate()

	s.recompute(c)
	cart := c.Clone()
	return &cart, nil
}

// RemoveItem deletes a line by id and recomputes totals
func (s *CartService) RemoveItem(sessionID, lineID string) (*entities.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	i := c.FindLine(lineID)
	if i < 0 {
		return nil, fmt.Errorf("cart line %s: %w", lineID, repositories.ErrNotFound)
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)

	s.recompute(c)
	cart := c.Clone()
	return &cart, nil
}

// UpdateNotes sets a line's free-text note. Totals are untouched.
func (s *CartService) UpdateNotes(sessionID, lineID, notes string) (*entities.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	i := c.FindLine(lineID)
	if i < 0 {
		return nil, fmt.Errorf("cart line %s: %w", lineID, repositories.ErrNotFound)
	}
	c.Items[i].Notes = notes

	cart := c.Clone()
	return &cart, nil
}

// ApplyLineDiscount stores a discount percentage on a line. The stored
// percentage does not enter the totals formula.
func (s *CartService) ApplyLineDiscount(sessionID, lineID string, pct float64) (*entities.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	i := c.FindLine(lineID)
	if i < 0 {
		return nil, fmt.Errorf("cart line %s: %w", lineID, repositories.ErrNotFound)
	}
	c.Items[i].DiscountPct = pct

	cart := c.Clone()
	return &cart, nil
}

// ApplyGlobalDiscount sets the cart's global discount percentage and
// recomputes totals against the current items
func (s *CartService) ApplyGlobalDiscount(sessionID string, pct float64) *entities.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	c.DiscountPct = pct
	s.recompute(c)

	cart := c.Clone()
	return &cart
}

// Clear resets the session's cart to empty with no table and zero totals
func (s *CartService) Clear(sessionID string) *entities.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := entities.NewCart()
	s.carts[sessionID] = c

	cart := c.Clone()
	return &cart
}

// Checkout submits the cart to the order lifecycle and, on success, clears
// it. The order freezes the cart's lines and totals as they stand.
func (s *CartService) Checkout(sessionID string) (*entities.Order, error) {
	s.mu.Lock()
	c := s.cart(sessionID)
	if len(c.Items) == 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("cannot place an order with an empty cart")
	}
	tableID := c.TableID
	items := c.Clone().Items
	totals := Totals{Subtotal: c.Subtotal, Discount: c.Discount, Tax: c.Tax, Total: c.Total}
	s.mu.Unlock()

	order, err := s.orders.Create(tableID, items, totals, entities.StatusQueued)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.carts[sessionID] = entities.NewCart()
	s.mu.Unlock()

	s.logger.Info("cart checked out",
		zap.String("order_id", order.ID),
		zap.String("table_id", tableID),
		zap.Int("lines", len(items)))
	return order, nil
}
