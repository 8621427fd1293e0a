//go:build unit

package builder

import (
	"salon-dashboard/internal/domain/staff"
)

type StaffBuilder struct {
	ID             string
	Name           string
	Designation    string
	Email          string
	Phone          string
	CommissionRate float64
	IsActive       bool
}

func NewStaffBuilder() *StaffBuilder {
	return &StaffBuilder{
		ID:             "emp_001",
		Name:           "Maria Santos",
		Designation:    "Senior Stylist",
		Email:          "maria@example.com",
		Phone:          "+1 555 0101",
		CommissionRate: 35,
		IsActive:       true,
	}
}

func (s *StaffBuilder) With(mutate func(*StaffBuilder)) *StaffBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *StaffBuilder) BuildDomain() (*staff.Staff, error) {
	return staff.NewStaff(s.ID, s.Name, s.Designation, s.Email, s.Phone, s.CommissionRate, s.IsActive)
}

func (s *StaffBuilder) MustBuild() *staff.Staff {
	m, err := s.BuildDomain()
	if err != nil {
		panic(err)
	}
	return m
}

// Fluent builder methods
func (s *StaffBuilder) WithID(id string) *StaffBuilder {
	s.ID = id
	return s
}

func (s *StaffBuilder) WithName(name string) *StaffBuilder {
	s.Name = name
	return s
}

func (s *StaffBuilder) WithDesignation(designation string) *StaffBuilder {
	s.Designation = designation
	return s
}

func (s *StaffBuilder) WithCommissionRate(rate float64) *StaffBuilder {
	s.CommissionRate = rate
	return s
}

func (s *StaffBuilder) AsInactive() *StaffBuilder {
	s.IsActive = false
	return s
}
