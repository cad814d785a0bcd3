package services

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/cafeops/pkg/domain/entities"
)

var hundred = decimal.NewFromInt(100)

// Totals is the derived pricing of a set of line items
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// CalculateTotals computes subtotal, discount, tax and total for a set of
// line items. The subtotal sums each line's quantity × unit price; per-line
// discount percentages are stored on the lines but are not subtracted here.
// The global discount applies to the subtotal, tax applies to the discounted
// amount. No rounding happens at any step; display formatting is the
// presentation layer's concern. An empty item list yields all zeros.
func CalculateTotals(items []entities.LineItem, globalDiscountPct, taxPct float64) Totals {
	subtotal := decimal.Zero
	for _, line := range items {
		subtotal = subtotal.Add(line.Subtotal)
	}

	discount := subtotal.Mul(decimal.NewFromFloat(globalDiscountPct)).Div(hundred)
	taxable := subtotal.Sub(discount)
	tax := taxable.Mul(decimal.NewFromFloat(taxPct)).Div(hundred)
	total := taxable.Add(tax)

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    total,
	}
}
