package services

import (
	"time"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
)

// StaffService manages the roster. Roles here are display data; nothing in
// the core enforces authorization.
type StaffService struct {
	staff repositories.StaffRepository
}

// NewStaffService creates a staff service
func NewStaffService(staff repositories.StaffRepository) *StaffService {
	return &StaffService{staff: staff}
}

// All returns every staff member
func (s *StaffService) All() ([]*entities.Staff, error) {
	return s.staff.GetAll()
}

// ByID returns one staff member, or ErrNotFound
func (s *StaffService) ByID(staffID string) (*entities.Staff, error) {
	return s.staff.GetByID(staffID)
}

// Active returns staff members currently on the roster
func (s *StaffService) Active() ([]*entities.Staff, error) {
	return s.staff.GetActive()
}

// Create adds a staff member
func (s *StaffService) Create(name string, role entities.Role, email, phone string, shift entities.Shift, hireDate time.Time) (*entities.Staff, error) {
	member, err := entities.NewStaff(name, role, email, phone, shift, hireDate)
	if err != nil {
		return nil, err
	}
	return s.staff.Insert(member)
}

// Update replaces a staff member
func (s *StaffService) Update(member *entities.Staff) (*entities.Staff, error) {
	return s.staff.Update(member)
}

// Delete removes a staff member, reporting success
func (s *StaffService) Delete(staffID string) bool {
	return s.staff.Delete(staffID)
}

// ToggleActive flips whether a staff member is on the active roster
func (s *StaffService) ToggleActive(staffID string) (*entities.Staff, error) {
	member, err := s.staff.GetByID(staffID)
	if err != nil {
		return nil, err
	}
	member.Active = !member.Active
	return s.staff.Update(member)
}
