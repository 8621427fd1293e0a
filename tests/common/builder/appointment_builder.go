//go:build unit

package builder

import (
	"time"

	"salon-dashboard/internal/domain/appointment"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID                 string
	BookingID          string
	ClientName         string
	ClientPhone        string
	ServiceName        string
	ServiceDescription string
	StaffID            string
	Start              time.Time
	DurationMinutes    int
	Status             appointment.Status
	PriceCents         int64
	PaymentMode        *string
	Notes              *string
}

func NewAppointmentBuilder() *AppointmentBuilder {
	id := uuid.NewString()
	return &AppointmentBuilder{
		ID:                 id,
		BookingID:          "bk_" + id[:8],
		ClientName:         "Olivia Brown",
		ClientPhone:        "+1 555 0201",
		ServiceName:        "Swedish Massage",
		ServiceDescription: "Full body relaxation massage",
		StaffID:            "emp_001",
		Start:              time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC),
		DurationMinutes:    60,
		Status:             appointment.StatusConfirmed,
		PriceCents:         9000,
	}
}

func (a *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(a)
	return a
}

// Build methods
func (a *AppointmentBuilder) BuildFields() appointment.Fields {
	return appointment.Fields{
		ID:                 a.ID,
		BookingID:          a.BookingID,
		ClientName:         a.ClientName,
		ClientPhone:        a.ClientPhone,
		ServiceName:        a.ServiceName,
		ServiceDescription: a.ServiceDescription,
		StaffID:            a.StaffID,
		Start:              a.Start,
		DurationMinutes:    a.DurationMinutes,
		Status:             a.Status,
		PriceCents:         a.PriceCents,
		PaymentMode:        a.PaymentMode,
		Notes:              a.Notes,
	}
}

func (a *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	return appointment.Reconstruct(a.BuildFields())
}

func (a *AppointmentBuilder) MustBuild() *appointment.Appointment {
	appt, err := a.BuildDomain()
	if err != nil {
		panic(err)
	}
	return appt
}

func (a *AppointmentBuilder) BuildDraft() appointment.Draft {
	return appointment.Draft{
		ClientName:      a.ClientName,
		ServiceName:     a.ServiceName,
		StaffID:         a.StaffID,
		Start:           a.Start,
		DurationMinutes: a.DurationMinutes,
	}
}

// Fluent builder methods
func (a *AppointmentBuilder) WithID(id string) *AppointmentBuilder {
	a.ID = id
	return a
}

func (a *AppointmentBuilder) WithClientName(name string) *AppointmentBuilder {
	a.ClientName = name
	return a
}

func (a *AppointmentBuilder) WithServiceName(name string) *AppointmentBuilder {
	a.ServiceName = name
	return a
}

func (a *AppointmentBuilder) WithStaffID(staffID string) *AppointmentBuilder {
	a.StaffID = staffID
	return a
}

func (a *AppointmentBuilder) WithStart(start time.Time) *AppointmentBuilder {
	a.Start = start
	return a
}

func (a *AppointmentBuilder) WithDuration(minutes int) *AppointmentBuilder {
	a.DurationMinutes = minutes
	return a
}

func (a *AppointmentBuilder) WithStatus(status appointment.Status) *AppointmentBuilder {
	a.Status = status
	return a
}

func (a *AppointmentBuilder) WithPriceCents(cents int64) *AppointmentBuilder {
	a.PriceCents = cents
	return a
}

func (a *AppointmentBuilder) WithNotes(notes string) *AppointmentBuilder {
	a.Notes = &notes
	return a
}

func (a *AppointmentBuilder) WithPaymentMode(mode string) *AppointmentBuilder {
	a.PaymentMode = &mode
	return a
}

func (a *AppointmentBuilder) AsCancelled() *AppointmentBuilder {
	a.Status = appointment.StatusCancelled
	return a
}
