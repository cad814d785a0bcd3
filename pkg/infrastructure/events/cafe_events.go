package events

import "github.com/vsinha/cafeops/pkg/domain/entities"

const (
	OrderCreatedEvent       = "order.created"
	OrderStatusChangedEvent = "order.status_changed"
	OrderDeletedEvent       = "order.deleted"

	TableStatusChangedEvent = "table.status_changed"

	InventoryAdjustedEvent = "inventory.adjusted"
)

type OrderCreated struct {
	Order entities.Order `json:"order"`
}

type OrderStatusChanged struct {
	OrderID   string               `json:"order_id"`
	OldStatus entities.OrderStatus `json:"old_status"`
	NewStatus entities.OrderStatus `json:"new_status"`
}

type OrderDeleted struct {
	Order entities.Order `json:"order"`
}

type TableStatusChanged struct {
	TableID   string               `json:"table_id"`
	NewStatus entities.TableStatus `json:"new_status"`
	OrderID   string               `json:"order_id,omitempty"`
}

type InventoryAdjusted struct {
	ItemID    string               `json:"item_id"`
	Delta     float64              `json:"delta"`
	NewStock  float64              `json:"new_stock"`
	NewStatus entities.StockStatus `json:"new_status"`
}

func NewOrderCreatedEvent(order entities.Order) Event {
	return NewEvent(OrderCreatedEvent, order.ID, OrderCreated{Order: order})
}

func NewOrderStatusChangedEvent(orderID string, oldStatus, newStatus entities.OrderStatus) Event {
	return NewEvent(OrderStatusChangedEvent, orderID, OrderStatusChanged{
		OrderID:   orderID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
	})
}

func NewOrderDeletedEvent(order entities.Order) Event {
	return NewEvent(OrderDeletedEvent, order.ID, OrderDeleted{Order: order})
}

func NewTableStatusChangedEvent(tableID string, status entities.TableStatus, orderID string) Event {
	return NewEvent(TableStatusChangedEvent, tableID, TableStatusChanged{
		TableID:   tableID,
		NewStatus: status,
		OrderID:   orderID,
	})
}

func NewInventoryAdjustedEvent(item entities.InventoryItem, delta float64) Event {
	return NewEvent(InventoryAdjustedEvent, item.ID, InventoryAdjusted{
		ItemID:    item.ID,
		Delta:     delta,
		NewStock:  item.CurrentStock,
		NewStatus: item.Status,
	})
}
