package memory

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
)

func newTestOrder(tableID string, status entities.OrderStatus) *entities.Order {
	menuItem := entities.MenuItem{
		ID:       "m1",
		Name:     "Espresso",
		Category: entities.CategoryCoffee,
		Price:    decimal.NewFromInt(100),
	}
	line, _ := entities.NewLineItem(menuItem, 1)
	return &entities.Order{
		TableID: tableID,
		Items:   []entities.LineItem{*line},
		Status:  status,
	}
}

func TestOrderRepository_InsertAssignsIdentity(t *testing.T) {
	repo := NewOrderRepository()

	stored, err := repo.Insert(newTestOrder("t1", entities.StatusQueued))
	if err != nil {
		t.Fatalf("Failed to insert order: %v", err)
	}
	if stored.ID == "" {
		t.Fatalf("Expected insert to assign an id")
	}

	fetched, err := repo.GetByID(stored.ID)
	if err != nil {
		t.Fatalf("Failed to get order by id: %v", err)
	}
	if fetched.TableID != "t1" {
		t.Errorf("Expected table t1, got %s", fetched.TableID)
	}
}

func TestOrderRepository_GetByIDNotFound(t *testing.T) {
	repo := NewOrderRepository()

	_, err := repo.GetByID("missing")
	if err == nil {
		t.Fatalf("Expected error for missing order")
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestOrderRepository_StatusFilters(t *testing.T) {
	repo := NewOrderRepository()

	statuses := []entities.OrderStatus{
		entities.StatusQueued,
		entities.StatusInProgress,
		entities.StatusReady,
		entities.StatusServed,
		entities.StatusPaid,
	}
	for _, s := range statuses {
		if _, err := repo.Insert(newTestOrder("t1", s)); err != nil {
			t.Fatalf("Failed to insert order: %v", err)
		}
	}

	active, err := repo.GetActive()
	if err != nil {
		t.Fatalf("Failed to get active orders: %v", err)
	}
	if len(active) != 3 {
		t.Errorf("Expected 3 active orders, got %d", len(active))
	}

	paid, err := repo.GetByStatus(entities.StatusPaid)
	if err != nil {
		t.Fatalf("Failed to get paid orders: %v", err)
	}
	if len(paid) != 1 {
		t.Errorf("Expected 1 paid order, got %d", len(paid))
	}

	byTable, err := repo.GetByTable("t1")
	if err != nil {
		t.Fatalf("Failed to get orders by table: %v", err)
	}
	if len(byTable) != 5 {
		t.Errorf("Expected 5 orders for table t1, got %d", len(byTable))
	}
}

func TestOrderRepository_DeleteReportsSuccess(t *testing.T) {
	repo := NewOrderRepository()

	stored, err := repo.Insert(newTestOrder("", entities.StatusQueued))
	if err != nil {
		t.Fatalf("Failed to insert order: %v", err)
	}

	if !repo.Delete(stored.ID) {
		t.Errorf("Expected delete of existing order to succeed")
	}
	if repo.Delete(stored.ID) {
		t.Errorf("Expected delete of missing order to report false")
	}

	all, err := repo.GetAll()
	if err != nil {
		t.Fatalf("Failed to list orders: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("Expected empty repository after delete, got %d orders", len(all))
	}
}

func TestOrderRepository_ReturnsCopies(t *testing.T) {
	repo := NewOrderRepository()

	stored, err := repo.Insert(newTestOrder("t1", entities.StatusQueued))
	if err != nil {
		t.Fatalf("Failed to insert order: %v", err)
	}

	stored.Items[0].Quantity = 42
	stored.Status = entities.StatusPaid

	fetched, err := repo.GetByID(stored.ID)
	if err != nil {
		t.Fatalf("Failed to get order by id: %v", err)
	}
	if fetched.Items[0].Quantity != 1 {
		t.Errorf("Expected stored quantity 1, got %d", fetched.Items[0].Quantity)
	}
	if fetched.Status != entities.StatusQueued {
		t.Errorf("Expected stored status queued, got %s", fetched.Status)
	}
}
