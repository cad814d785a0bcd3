package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
)

const sessionID = "pos-1"

func TestCartService_AddItemMergesSameMenuItem(t *testing.T) {
	env := newTestEnv()

	if _, err := env.cart.AddItem(sessionID, "m1", 2); err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}
	cart, err := env.cart.AddItem(sessionID, "m1", 1)
	if err != nil {
		t.Fatalf("Failed to add item again: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("Expected a single merged line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Errorf("Expected merged quantity 3, got %d", cart.Items[0].Quantity)
	}
	if !cart.Items[0].Subtotal.Equal(decimal.NewFromInt(300)) {
		t.Errorf("Expected line subtotal 300, got %s", cart.Items[0].Subtotal)
	}
}

func TestCartService_NotedLineNeverMerges(t *testing.T) {
	env := newTestEnv()

	cart, err := env.cart.AddItem(sessionID, "m1", 1)
	if err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}
	if _, err := env.cart.UpdateNotes(sessionID, cart.Items[0].ID, "extra hot"); err != nil {
		t.Fatalf("Failed to set notes: %v", err)
	}

	cart, err = env.cart.AddItem(sessionID, "m1", 1)
	if err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("Expected noted line to stay separate, got %d lines", len(cart.Items))
	}
}

func TestCartService_AddItemUnknownMenuItem(t *testing.T) {
	env := newTestEnv()

	_, err := env.cart.AddItem(sessionID, "missing", 1)
	if err == nil {
		t.Fatalf("Expected error for unknown menu item")
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestCartService_SubtotalTracksLines(t *testing.T) {
	env := newTestEnv()

	cart, err := env.cart.AddItem(sessionID, "m1", 2)
	if err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}
	if _, err := env.cart.AddItem(sessionID, "m2", 1); err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}
	lineID := cart.Items[0].ID

	cart, err = env.cart.UpdateQuantity(sessionID, lineID, 5)
	if err != nil {
		t.Fatalf("Failed to update quantity: %v", err)
	}
	if !cart.Subtotal.Equal(decimal.NewFromInt(550)) {
		t.Errorf("Expected subtotal 550 after quantity update, got %s", cart.Subtotal)
	}

	cart, err = env.cart.RemoveItem(sessionID, lineID)
	if err != nil {
		t.Fatalf("Failed to remove item: %v", err)
	}
	if !cart.Subtotal.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Expected subtotal 50 after removal, got %s", cart.Subtotal)
	}
}

func TestCartService_ZeroQuantityRemovesLine(t *testing.T) {
	env := newTestEnv()

	cart, err := env.cart.AddItem(sessionID, "m1", 2)
	if err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}
	lineID := cart.Items[0].ID

	cart, err = env.cart.UpdateQuantity(sessionID, lineID, 0)
	if err != nil {
		t.Fatalf("Failed to update quantity to zero: %v", err)
	}
	if cart.FindLine(lineID) >= 0 {
		t.Errorf("Expected line to be removed at quantity 0")
	}
	if len(cart.Items) != 0 {
		t.Errorf("Expected empty cart, got %d lines", len(cart.Items))
	}
}

func TestCartService_GlobalDiscountPreservedAcrossMutations(t *testing.T) {
	env := newTestEnv()

	if _, err := env.cart.AddItem(sessionID, "m1", 2); err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}
	env.cart.ApplyGlobalDiscount(sessionID, 10)

	// Subsequent mutations keep applying the 10% discount.
	cart, err := env.cart.AddItem(sessionID, "m2", 1)
	if err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}

	if !cart.Subtotal.Equal(decimal.NewFromInt(250)) {
		t.Errorf("Expected subtotal 250, got %s", cart.Subtotal)
	}
	if !cart.Discount.Equal(decimal.NewFromInt(25)) {
		t.Errorf("Expected discount 25, got %s", cart.Discount)
	}
	if !cart.Tax.Equal(decimal.RequireFromString("11.25")) {
		t.Errorf("Expected tax 11.25, got %s", cart.Tax)
	}
	if !cart.Total.Equal(decimal.RequireFromString("236.25")) {
		t.Errorf("Expected total 236.25, got %s", cart.Total)
	}
}

func TestCartService_LineDiscountStoredNotApplied(t *testing.T) {
	env := newTestEnv()

	cart, err := env.cart.AddItem(sessionID, "m1", 2)
	if err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}

	cart, err = env.cart.ApplyLineDiscount(sessionID, cart.Items[0].ID, 50)
	if err != nil {
		t.Fatalf("Failed to apply line discount: %v", err)
	}
	if cart.Items[0].DiscountPct != 50 {
		t.Errorf("Expected stored line discount 50, got %v", cart.Items[0].DiscountPct)
	}
	if !cart.Total.Equal(decimal.NewFromInt(210)) {
		t.Errorf("Expected total 210 (line discount not applied), got %s", cart.Total)
	}
}

func TestCartService_ClearResetsEverything(t *testing.T) {
	env := newTestEnv()

	env.cart.SetTable(sessionID, "t1")
	if _, err := env.cart.AddItem(sessionID, "m1", 2); err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}
	env.cart.ApplyGlobalDiscount(sessionID, 10)

	cart := env.cart.Clear(sessionID)
	if cart.TableID != "" {
		t.Errorf("Expected cleared cart to have no table, got %s", cart.TableID)
	}
	if len(cart.Items) != 0 {
		t.Errorf("Expected cleared cart to have no items, got %d", len(cart.Items))
	}
	if !cart.Total.IsZero() || cart.DiscountPct != 0 {
		t.Errorf("Expected zero totals and discount, got total %s discount %v", cart.Total, cart.DiscountPct)
	}
}

func TestCartService_SessionsAreIndependent(t *testing.T) {
	env := newTestEnv()

	if _, err := env.cart.AddItem("pos-1", "m1", 1); err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}
	other := env.cart.Get("pos-2")
	if len(other.Items) != 0 {
		t.Errorf("Expected second session cart to be empty, got %d lines", len(other.Items))
	}
}

func TestCartService_CheckoutCreatesOrderAndClears(t *testing.T) {
	env := newTestEnv()

	env.cart.SetTable(sessionID, "t1")
	if _, err := env.cart.AddItem(sessionID, "m1", 2); err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}
	env.cart.ApplyGlobalDiscount(sessionID, 10)

	order, err := env.cart.Checkout(sessionID)
	if err != nil {
		t.Fatalf("Failed to check out: %v", err)
	}
	if order.Status != entities.StatusQueued {
		t.Errorf("Expected order status queued, got %s", order.Status)
	}
	if !order.Total.Equal(decimal.RequireFromString("189")) {
		t.Errorf("Expected frozen total 189, got %s", order.Total)
	}

	cart := env.cart.Get(sessionID)
	if len(cart.Items) != 0 || cart.TableID != "" {
		t.Errorf("Expected cart cleared after checkout")
	}

	table, err := env.tableRepo.GetByID("t1")
	if err != nil {
		t.Fatalf("Failed to get table: %v", err)
	}
	if table.Status != entities.TableOccupied {
		t.Errorf("Expected table occupied after checkout, got %s", table.Status)
	}
	if table.CurrentOrderID != order.ID {
		t.Errorf("Expected table linked to order %s, got %s", order.ID, table.CurrentOrderID)
	}
}

func TestCartService_CheckoutEmptyCart(t *testing.T) {
	env := newTestEnv()

	if _, err := env.cart.Checkout(sessionID); err == nil {
		t.Fatalf("Expected error checking out an empty cart")
	}
}
