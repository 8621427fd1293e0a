package grid

import (
	"context"
	"time"

	"salon-dashboard/internal/domain/appointment"
	"salon-dashboard/internal/domain/staff"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/grid/ports.go -package=gridmock

type ScheduleStore interface {
	DayView(ctx context.Context, date time.Time, active staff.IDSet) []*appointment.Appointment
	MoveAppointment(ctx context.Context, id, staffID string, start time.Time) (*appointment.Appointment, bool)
	CreateAppointment(ctx context.Context, draft appointment.Draft) (*appointment.Appointment, error)
	FindByID(ctx context.Context, id string) (*appointment.Appointment, error)
}

type StaffRoster interface {
	Active(ctx context.Context) []*staff.Staff
}
