package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
	"github.com/vsinha/cafeops/pkg/infrastructure/events"
)

// OrderService owns the order lifecycle and the table transitions it drives.
// Orders are immutable once placed except for status bookkeeping; totals are
// frozen at creation. Table state is only ever changed here (or by an
// explicit admin override through the table service), which is what keeps a
// table's order link pointing at a live, unpaid order.
//
// The service mutex serializes the compound order+table mutations so the
// HTTP layer can call in from multiple goroutines.
type OrderService struct {
	mu     sync.Mutex
	orders repositories.OrderRepository
	tables repositories.TableRepository
	events *events.InMemoryEventStore
	logger *zap.Logger
}

// NewOrderService creates an order lifecycle service
func NewOrderService(orders repositories.OrderRepository, tables repositories.TableRepository, store *events.InMemoryEventStore, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		tables: tables,
		events: store,
		logger: logger,
	}
}

// Create places a new order. Identity and timestamps are assigned here; an
// empty status defaults to queued. A non-empty tableID transitions that
// table to occupied and links it to the new order. A tableID that matches
// no table is tolerated: the order is still created.
func (s *OrderService) Create(tableID string, items []entities.LineItem, totals Totals, status entities.OrderStatus) (*entities.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}
	if status == "" {
		status = entities.StatusQueued
	}
	if !status.Valid() {
		return nil, fmt.Errorf("unknown order status: %s", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	order := &entities.Order{
		TableID:   tableID,
		Items:     items,
		Status:    status,
		Subtotal:  totals.Subtotal,
		Discount:  totals.Discount,
		Tax:       totals.Tax,
		Total:     totals.Total,
		CreatedAt: now,
		UpdatedAt: now,
	}

	stored, err := s.orders.Insert(order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if tableID != "" {
		s.setTable(tableID, entities.TableOccupied, stored.ID)
	}

	_ = s.events.AppendEvent(stored.ID, events.NewOrderCreatedEvent(*stored))
	s.logger.Info("order created",
		zap.String("order_id", stored.ID),
		zap.String("table_id", tableID),
		zap.String("status", string(stored.Status)))
	return stored, nil
}

// UpdateStatus moves an order to a new status and refreshes updatedAt.
// Entering served stamps servedAt once and moves the linked table to billing
// while retaining the order link; re-entering served is permitted but never
// overwrites the original servedAt. Entering paid frees the linked table
// and clears its order link. An unknown order id returns ErrNotFound, which
// callers treat as a normal outcome.
func (s *OrderService) UpdateStatus(orderID string, newStatus entities.OrderStatus) (*entities.Order, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("unknown order status: %s", newStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	oldStatus := order.Status
	order.Status = newStatus
	order.UpdatedAt = time.Now()
	if newStatus == entities.StatusServed && order.ServedAt == nil {
		served := order.UpdatedAt
		order.ServedAt = &served
	}

	updated, err := s.orders.Update(order)
	if err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", orderID, err)
	}

	if order.TableID != "" {
		switch newStatus {
		case entities.StatusServed:
			s.setTable(order.TableID, entities.TableBilling, order.ID)
		case entities.StatusPaid:
			s.setTable(order.TableID, entities.TableFree, "")
		}
	}

	_ = s.events.AppendEvent(updated.ID, events.NewOrderStatusChangedEvent(updated.ID, oldStatus, newStatus))
	s.logger.Info("order status changed",
		zap.String("order_id", updated.ID),
		zap.String("from", string(oldStatus)),
		zap.String("to", string(newStatus)))
	return updated, nil
}

// AdvanceKitchen moves an order one step along the kitchen board
// (queued → in-progress → ready → served)
func (s *OrderService) AdvanceKitchen(orderID string) (*entities.Order, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	next, ok := order.Status.NextKitchenStatus()
	if !ok {
		return nil, fmt.Errorf("order %s cannot advance from status %s", orderID, order.Status)
	}
	return s.UpdateStatus(orderID, next)
}

// Pay records the payment method and settles the order, freeing its table
func (s *OrderService) Pay(orderID string, method entities.PaymentMethod) (*entities.Order, error) {
	s.mu.Lock()
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	order.PaymentMethod = method
	if _, err := s.orders.Update(order); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to record payment for order %s: %w", orderID, err)
	}
	s.mu.Unlock()

	return s.UpdateStatus(orderID, entities.StatusPaid)
}

// Delete removes an order and always frees its linked table, whatever the
// order's last status was. Deleting an unknown order reports false.
func (s *OrderService) Delete(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return false
	}

	if !s.orders.Delete(orderID) {
		return false
	}

	if order.TableID != "" {
		s.setTable(order.TableID, entities.TableFree, "")
	}

	_ = s.events.AppendEvent(order.ID, events.NewOrderDeletedEvent(*order))
	s.logger.Info("order deleted",
		zap.String("order_id", order.ID),
		zap.String("table_id", order.TableID),
		zap.String("last_status", string(order.Status)))
	return true
}

// setTable applies a table transition, absorbing dangling references: a
// table id that matches nothing is a no-op, not a failure. Callers must
// hold the mutex.
func (s *OrderService) setTable(tableID string, status entities.TableStatus, orderID string) {
	if _, err := s.tables.SetStatus(tableID, status, orderID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.logger.Warn("order references unknown table",
				zap.String("table_id", tableID))
			return
		}
		s.logger.Error("failed to transition table",
			zap.String("table_id", tableID),
			zap.Error(err))
		return
	}
	_ = s.events.AppendEvent(tableID, events.NewTableStatusChangedEvent(tableID, status, orderID))
}

// All returns every order
func (s *OrderService) All() ([]*entities.Order, error) {
	return s.orders.GetAll()
}

// ByID returns one order, or ErrNotFound
func (s *OrderService) ByID(orderID string) (*entities.Order, error) {
	return s.orders.GetByID(orderID)
}

// ByStatus returns orders with the given status
func (s *OrderService) ByStatus(status entities.OrderStatus) ([]*entities.Order, error) {
	return s.orders.GetByStatus(status)
}

// Active returns orders still in the kitchen workflow
func (s *OrderService) Active() ([]*entities.Order, error) {
	return s.orders.GetActive()
}
