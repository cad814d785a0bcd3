package entities

import (
	"fmt"
	"time"
)

// Shift names the block of the day a staff member works
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftEvening   Shift = "evening"
	ShiftNight     Shift = "night"
)

// Valid reports whether the shift is one of the known values
func (s Shift) Valid() bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftEvening, ShiftNight:
		return true
	}
	return false
}

// Staff represents an employee on the roster
type Staff struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Role     Role      `json:"role"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Shift    Shift     `json:"shift"`
	Active   bool      `json:"active"`
	HireDate time.Time `json:"hire_date"`
}

// NewStaff creates a validated Staff record
func NewStaff(name string, role Role, email, phone string, shift Shift, hireDate time.Time) (*Staff, error) {
	if name == "" {
		return nil, fmt.Errorf("staff name cannot be empty")
	}
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role: %s", role)
	}
	if !shift.Valid() {
		return nil, fmt.Errorf("unknown shift: %s", shift)
	}

	return &Staff{
		Name:     name,
		Role:     role,
		Email:    email,
		Phone:    phone,
		Shift:    shift,
		Active:   true,
		HireDate: hireDate,
	}, nil
}
