package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus tracks an order through the kitchen and billing workflow
type OrderStatus string

const (
	StatusDraft      OrderStatus = "draft"
	StatusQueued     OrderStatus = "queued"
	StatusInProgress OrderStatus = "in-progress"
	StatusReady      OrderStatus = "ready"
	StatusServed     OrderStatus = "served"
	StatusPaid       OrderStatus = "paid"
)

// OrderStatuses lists every valid status in workflow order
var OrderStatuses = []OrderStatus{
	StatusDraft,
	StatusQueued,
	StatusInProgress,
	StatusReady,
	StatusServed,
	StatusPaid,
}

// Valid reports whether the status is one of the known values
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Active reports whether the order still needs kitchen attention
func (s OrderStatus) Active() bool {
	return s == StatusQueued || s == StatusInProgress || s == StatusReady
}

// NextKitchenStatus returns the successor on the kitchen board. The second
// return is false for statuses the kitchen does not advance (draft, served,
// paid); paid is reached through billing, never through the kitchen.
func (s OrderStatus) NextKitchenStatus() (OrderStatus, bool) {
	switch s {
	case StatusQueued:
		return StatusInProgress, true
	case StatusInProgress:
		return StatusReady, true
	case StatusReady:
		return StatusServed, true
	default:
		return s, false
	}
}

// PaymentMethod records how an order was settled
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentUPI   PaymentMethod = "upi"
	PaymentSplit PaymentMethod = "split"
)

// LineItem is one entry in a cart or order: a snapshot of a menu item, the
// quantity requested, and the subtotal derived from them. DiscountPct is
// stored per line but is not part of the totals formula.
type LineItem struct {
	ID          string          `json:"id"`
	MenuItem    MenuItem        `json:"menu_item"`
	Quantity    int             `json:"quantity"`
	Notes       string          `json:"notes,omitempty"`
	DiscountPct float64         `json:"discount_pct,omitempty"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// NewLineItem creates a validated LineItem with a computed subtotal
func NewLineItem(menuItem MenuItem, quantity int) (*LineItem, error) {
	if menuItem.ID == "" {
		return nil, fmt.Errorf("menu item must have an id")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	line := &LineItem{
		MenuItem: menuItem.Clone(),
		Quantity: quantity,
	}
	line.Recalculate()
	return line, nil
}

// Recalculate re-derives the subtotal from quantity and unit price. Every
// mutation of quantity must be followed by a call to this method; the
// subtotal is never stored independently of its inputs.
func (l *LineItem) Recalculate() {
	l.Subtotal = l.MenuItem.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Clone returns an independent copy of the line item
func (l LineItem) Clone() LineItem {
	out := l
	out.MenuItem = l.MenuItem.Clone()
	return out
}

// Order is the immutable-once-placed record of what was ordered. Totals are
// frozen at creation and never recomputed, even if menu prices change later.
// An empty TableID means takeaway.
type Order struct {
	ID            string          `json:"id"`
	TableID       string          `json:"table_id,omitempty"`
	Items         []LineItem      `json:"items"`
	Status        OrderStatus     `json:"status"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	ServedAt      *time.Time      `json:"served_at,omitempty"`
}

// Clone returns an independent copy of the order, including its lines
func (o Order) Clone() Order {
	out := o
	out.Items = make([]LineItem, len(o.Items))
	for i, line := range o.Items {
		out.Items[i] = line.Clone()
	}
	if o.ServedAt != nil {
		served := *o.ServedAt
		out.ServedAt = &served
	}
	return out
}
