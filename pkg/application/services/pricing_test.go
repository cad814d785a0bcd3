package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/cafeops/pkg/domain/entities"
)

func pricedLine(t *testing.T, id string, price int64, quantity int) entities.LineItem {
	t.Helper()
	line, err := entities.NewLineItem(entities.MenuItem{
		ID:       id,
		Name:     "Item " + id,
		Category: entities.CategoryCoffee,
		Price:    decimal.NewFromInt(price),
	}, quantity)
	if err != nil {
		t.Fatalf("Failed to create line item: %v", err)
	}
	return *line
}

func TestCalculateTotals_Scenario(t *testing.T) {
	// Two lines {qty 2, price 100} and {qty 1, price 50}, 10% global
	// discount, 5% tax.
	items := []entities.LineItem{
		pricedLine(t, "m1", 100, 2),
		pricedLine(t, "m2", 50, 1),
	}

	totals := CalculateTotals(items, 10, 5)

	expect := map[string][2]decimal.Decimal{
		"subtotal": {totals.Subtotal, decimal.NewFromInt(250)},
		"discount": {totals.Discount, decimal.NewFromInt(25)},
		"tax":      {totals.Tax, decimal.RequireFromString("11.25")},
		"total":    {totals.Total, decimal.RequireFromString("236.25")},
	}
	for name, pair := range expect {
		if !pair[0].Equal(pair[1]) {
			t.Errorf("Expected %s %s, got %s", name, pair[1], pair[0])
		}
	}
}

func TestCalculateTotals_EmptyCart(t *testing.T) {
	totals := CalculateTotals(nil, 50, 18)

	for name, got := range map[string]decimal.Decimal{
		"subtotal": totals.Subtotal,
		"discount": totals.Discount,
		"tax":      totals.Tax,
		"total":    totals.Total,
	} {
		if !got.IsZero() {
			t.Errorf("Expected zero %s for empty cart, got %s", name, got)
		}
	}
}

func TestCalculateTotals_Idempotent(t *testing.T) {
	items := []entities.LineItem{
		pricedLine(t, "m1", 120, 3),
		pricedLine(t, "m2", 90, 2),
	}

	first := CalculateTotals(items, 15, 5)
	second := CalculateTotals(items, 15, 5)

	if !first.Total.Equal(second.Total) || !first.Tax.Equal(second.Tax) ||
		!first.Discount.Equal(second.Discount) || !first.Subtotal.Equal(second.Subtotal) {
		t.Errorf("Expected identical totals on recompute, got %+v then %+v", first, second)
	}
}

func TestCalculateTotals_PerLineDiscountIgnored(t *testing.T) {
	line := pricedLine(t, "m1", 100, 2)
	line.DiscountPct = 50

	totals := CalculateTotals([]entities.LineItem{line}, 0, 0)

	if !totals.Subtotal.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Expected per-line discount to be excluded from subtotal, got %s", totals.Subtotal)
	}
	if !totals.Total.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Expected total 200, got %s", totals.Total)
	}
}

func TestCalculateTotals_TotalFormula(t *testing.T) {
	// total == (subtotal − discount) × (1 + taxRate) across parameter
	// combinations.
	items := []entities.LineItem{
		pricedLine(t, "m1", 100, 2),
		pricedLine(t, "m2", 50, 1),
		pricedLine(t, "m3", 35, 4),
	}

	for _, discountPct := range []float64{0, 5, 10, 33, 100} {
		for _, taxPct := range []float64{0, 5, 18} {
			totals := CalculateTotals(items, discountPct, taxPct)

			taxable := totals.Subtotal.Sub(totals.Discount)
			want := taxable.Add(taxable.Mul(decimal.NewFromFloat(taxPct)).Div(hundred))
			if !totals.Total.Equal(want) {
				t.Errorf("discount %v tax %v: Expected total %s, got %s",
					discountPct, taxPct, want, totals.Total)
			}
		}
	}
}
