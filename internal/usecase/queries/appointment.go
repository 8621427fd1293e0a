package queries

import (
	"context"
	"time"

	"salon-dashboard/internal/domain/appointment"
	"salon-dashboard/internal/domain/staff"
	"salon-dashboard/internal/infra"
	"salon-dashboard/internal/pkg/clock"
	"salon-dashboard/internal/pkg/errs"
)

//go:generate mockgen -source=appointment.go -destination=../../../tests/mock/queries/appointment.go -package=queriesmock

var (
	ErrAppointmentNotFound = errs.New("appointment not found")
)

type AppointmentQueries interface {
	GetByID(ctx context.Context, id string) (*AppointmentView, error)
	Upcoming(ctx context.Context, limit int) ([]*UpcomingItem, error)
	Describe(ctx context.Context, a *appointment.Appointment) *AppointmentView
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id string) (*appointment.Appointment, error)
	Upcoming(ctx context.Context, now time.Time, limit int) []*appointment.Appointment
}

type appointmentQueriesImpl struct {
	store  AppointmentReadStore
	roster StaffReadStore
	clock  clock.Clock
}

func NewAppointmentQueries(store AppointmentReadStore, roster StaffReadStore, clk clock.Clock) AppointmentQueries {
	return &appointmentQueriesImpl{
		store:  store,
		roster: roster,
		clock:  clk,
	}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id string) (*AppointmentView, error) {
	a, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrAppointmentNotFound, errs.ErrNotFound)
		}
		return nil, err
	}

	return q.Describe(ctx, a), nil
}

// Describe renders a record the caller already holds, such as a move or create result.
func (q *appointmentQueriesImpl) Describe(ctx context.Context, a *appointment.Appointment) *AppointmentView {
	return ToAppointmentView(a, q.staffName(ctx, a.StaffID()))
}

// Upcoming lists the next appointments from now across the whole roster.
func (q *appointmentQueriesImpl) Upcoming(ctx context.Context, limit int) ([]*UpcomingItem, error) {
	limit = ValidateLimit(limit)
	rows := q.store.Upcoming(ctx, q.clock.Now(), limit)

	items := make([]*UpcomingItem, 0, len(rows))
	for _, a := range rows {
		items = append(items, &UpcomingItem{
			ID:              a.ID(),
			ClientName:      a.ClientName(),
			ServiceName:     a.Service().Name(),
			StaffID:         a.StaffID(),
			StaffName:       q.staffName(ctx, a.StaffID()),
			Start:           a.Start(),
			DurationMinutes: a.DurationMinutes(),
			Status:          a.Status().Normalize().String(),
		})
	}
	return items, nil
}

// staffName is empty for ids missing from the roster
func (q *appointmentQueriesImpl) staffName(ctx context.Context, staffID string) string {
	m, err := q.roster.Find(ctx, staffID)
	if err != nil {
		return ""
	}
	return m.Name()
}

func ToAppointmentView(a *appointment.Appointment, staffName string) *AppointmentView {
	return &AppointmentView{
		ID:                 a.ID(),
		BookingID:          a.BookingID(),
		ClientName:         a.ClientName(),
		ClientPhone:        a.ClientPhone(),
		ServiceName:        a.Service().Name(),
		ServiceDescription: a.Service().Description(),
		StaffID:            a.StaffID(),
		StaffName:          staffName,
		Start:              a.Start(),
		End:                a.End(),
		DurationMinutes:    a.DurationMinutes(),
		Status:             a.Status().Normalize().String(),
		PriceCents:         a.Price().Cents(),
		PaymentMode:        a.PaymentMode(),
		Notes:              a.Notes(),
	}
}

type StaffReadStore interface {
	All(ctx context.Context) []*staff.Staff
	Find(ctx context.Context, id string) (*staff.Staff, error)
}
