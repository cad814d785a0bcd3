package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus tracks a restocking order with a supplier
type PurchaseOrderStatus string

const (
	PurchasePending   PurchaseOrderStatus = "pending"
	PurchaseOrdered   PurchaseOrderStatus = "ordered"
	PurchaseDelivered PurchaseOrderStatus = "delivered"
)

// Valid reports whether the status is one of the known values
func (s PurchaseOrderStatus) Valid() bool {
	switch s {
	case PurchasePending, PurchaseOrdered, PurchaseDelivered:
		return true
	}
	return false
}

// PurchaseOrderLine is one requested item on a purchase order
type PurchaseOrderLine struct {
	ItemID       string          `json:"item_id"`
	ItemName     string          `json:"item_name"`
	Quantity     float64         `json:"quantity"`
	Unit         string          `json:"unit"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
}

// PurchaseOrder is a restocking request sent to a supplier
type PurchaseOrder struct {
	ID           string              `json:"id"`
	Supplier     string              `json:"supplier"`
	Items        []PurchaseOrderLine `json:"items"`
	TotalAmount  decimal.Decimal     `json:"total_amount"`
	Status       PurchaseOrderStatus `json:"status"`
	OrderDate    time.Time           `json:"order_date"`
	DeliveryDate *time.Time          `json:"delivery_date,omitempty"`
}

// NewPurchaseOrder creates a validated PurchaseOrder with a computed total
func NewPurchaseOrder(supplier string, lines []PurchaseOrderLine) (*PurchaseOrder, error) {
	if supplier == "" {
		return nil, fmt.Errorf("supplier cannot be empty")
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("purchase order must contain at least one item")
	}

	total := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be positive for %s, got %v", line.ItemName, line.Quantity)
		}
		total = total.Add(line.PricePerUnit.Mul(decimal.NewFromFloat(line.Quantity)))
	}

	return &PurchaseOrder{
		Supplier:    supplier,
		Items:       lines,
		TotalAmount: total,
		Status:      PurchasePending,
		OrderDate:   time.Now(),
	}, nil
}

// Clone returns an independent copy of the purchase order
func (p PurchaseOrder) Clone() PurchaseOrder {
	out := p
	out.Items = make([]PurchaseOrderLine, len(p.Items))
	copy(out.Items, p.Items)
	if p.DeliveryDate != nil {
		d := *p.DeliveryDate
		out.DeliveryDate = &d
	}
	return out
}
