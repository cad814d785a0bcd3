package services

import (
	"fmt"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
)

// TableService exposes the floor plan and the administrative overrides that
// are allowed to touch table state outside the order lifecycle (manual
// status changes, capacity and number edits). The invariant between a
// table's order link and the order collection is the order service's job,
// not this one's.
type TableService struct {
	tables repositories.TableRepository
}

// NewTableService creates a table service
func NewTableService(tables repositories.TableRepository) *TableService {
	return &TableService{tables: tables}
}

// All returns every table
func (s *TableService) All() ([]*entities.Table, error) {
	return s.tables.GetAll()
}

// ByID returns one table, or ErrNotFound
func (s *TableService) ByID(tableID string) (*entities.Table, error) {
	return s.tables.GetByID(tableID)
}

// Available returns the free tables
func (s *TableService) Available() ([]*entities.Table, error) {
	return s.tables.GetAvailable()
}

// Override sets a table's status directly, bypassing the order lifecycle
func (s *TableService) Override(tableID string, status entities.TableStatus) (*entities.Table, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown table status: %s", status)
	}

	table, err := s.tables.GetByID(tableID)
	if err != nil {
		return nil, err
	}
	return s.tables.SetStatus(tableID, status, table.CurrentOrderID)
}

// Edit updates a table's display number and capacity
func (s *TableService) Edit(tableID string, number, capacity int) (*entities.Table, error) {
	if number <= 0 {
		return nil, fmt.Errorf("table number must be positive, got %d", number)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("table capacity must be positive, got %d", capacity)
	}

	table, err := s.tables.GetByID(tableID)
	if err != nil {
		return nil, err
	}
	table.Number = number
	table.Capacity = capacity
	return s.tables.Update(table)
}
