package entities

import "fmt"

// TableStatus tracks the occupancy state of a physical table
type TableStatus string

const (
	TableFree     TableStatus = "free"
	TableOccupied TableStatus = "occupied"
	TableReserved TableStatus = "reserved"
	TableBilling  TableStatus = "billing"
)

// Valid reports whether the status is one of the known values
func (s TableStatus) Valid() bool {
	switch s {
	case TableFree, TableOccupied, TableReserved, TableBilling:
		return true
	}
	return false
}

// Table represents a physical table. CurrentOrderID, when set, is a lookup
// key into the order collection, not an ownership relation: it must point at
// a live order that is not yet paid, and the order lifecycle clears it on
// payment or deletion.
type Table struct {
	ID             string      `json:"id"`
	Number         int         `json:"number"`
	Capacity       int         `json:"capacity"`
	Status         TableStatus `json:"status"`
	CurrentOrderID string      `json:"current_order_id,omitempty"`
}

// NewTable creates a validated Table in the free state
func NewTable(number, capacity int) (*Table, error) {
	if number <= 0 {
		return nil, fmt.Errorf("table number must be positive, got %d", number)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("table capacity must be positive, got %d", capacity)
	}

	return &Table{
		Number:   number,
		Capacity: capacity,
		Status:   TableFree,
	}, nil
}
