package entities

import "github.com/shopspring/decimal"

// Cart is the mutable, unsaved, in-progress order for a table or takeaway.
// At most one cart exists per session. The totals fields are derived from
// the lines and the discount percent on every mutation; DiscountPct is the
// global discount percentage preserved across recomputes. An empty TableID
// means takeaway. Carts are never persisted.
type Cart struct {
	TableID     string          `json:"table_id,omitempty"`
	Items       []LineItem      `json:"items"`
	DiscountPct float64         `json:"discount_pct"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// NewCart creates an empty cart with zero totals and no table
func NewCart() *Cart {
	return &Cart{
		Items:    []LineItem{},
		Subtotal: decimal.Zero,
		Discount: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
	}
}

// FindLine returns the index of the line with the given id, or -1
func (c *Cart) FindLine(lineID string) int {
	for i := range c.Items {
		if c.Items[i].ID == lineID {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy of the cart, including its lines
func (c Cart) Clone() Cart {
	out := c
	out.Items = make([]LineItem, len(c.Items))
	for i, line := range c.Items {
		out.Items[i] = line.Clone()
	}
	return out
}
