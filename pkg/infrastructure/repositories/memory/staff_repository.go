package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
)

// StaffRepository provides in-memory staff roster storage
type StaffRepository struct {
	mu   sync.RWMutex
	ids  []string
	byID map[string]*entities.Staff
}

// NewStaffRepository creates a new in-memory staff repository
func NewStaffRepository() *StaffRepository {
	return &StaffRepository{
		byID: make(map[string]*entities.Staff),
	}
}

// Verify interface compliance
var _ repositories.StaffRepository = (*StaffRepository)(nil)

// GetAll returns all staff members in insertion order
func (r *StaffRepository) GetAll() ([]*entities.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]*entities.Staff, 0, len(r.ids))
	for _, id := range r.ids {
		member := *r.byID[id]
		members = append(members, &member)
	}
	return members, nil
}

// GetByID returns the staff member with the given id
func (r *StaffRepository) GetByID(id string) (*entities.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("staff member %s: %w", id, repositories.ErrNotFound)
	}
	member := *stored
	return &member, nil
}

// GetActive returns staff members currently on the roster
func (r *StaffRepository) GetActive() ([]*entities.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var members []*entities.Staff
	for _, id := range r.ids {
		if r.byID[id].Active {
			member := *r.byID[id]
			members = append(members, &member)
		}
	}
	return members, nil
}

// Insert stores a new staff member, assigning its identity
func (r *StaffRepository) Insert(member *entities.Staff) (*entities.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *member
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	r.ids = append(r.ids, stored.ID)
	r.byID[stored.ID] = &stored

	out := stored
	return &out, nil
}

// Update replaces the stored staff member with the same id
func (r *StaffRepository) Update(member *entities.Staff) (*entities.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[member.ID]; !exists {
		return nil, fmt.Errorf("staff member %s: %w", member.ID, repositories.ErrNotFound)
	}
	stored := *member
	r.byID[member.ID] = &stored

	out := stored
	return &out, nil
}

// Delete removes the staff member with the given id, reporting success
func (r *StaffRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return false
	}
	delete(r.byID, id)
	for i, stored := range r.ids {
		if stored == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return true
}
