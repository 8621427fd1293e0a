package fixture

import (
	"log/slog"
	"math"
	"strings"
	"time"

	"salon-dashboard/internal/domain/appointment"
	"salon-dashboard/internal/domain/staff"
	"salon-dashboard/internal/domain/user"
	"salon-dashboard/internal/pkg/patch"
)

// Seed is the domain form of a fixture file.
type Seed struct {
	Appointments []*appointment.Appointment
	Staff        []*staff.Staff
	Users        []*user.User
	ServiceNames []string
}

// Build converts the document into domain records. Invalid entries are skipped with a
// warning so a single bad row never blocks startup.
func (f *File) Build(logger *slog.Logger, loc *time.Location) *Seed {
	return &Seed{
		Appointments: f.Appointments(logger, loc),
		Staff:        f.StaffMembers(logger),
		Users:        f.Accounts(logger),
		ServiceNames: f.ServiceNames(),
	}
}

// Appointments flattens every booking's service items into one record each.
// Optimistic items are placeholders and never reach the calendar.
func (f *File) Appointments(logger *slog.Logger, loc *time.Location) []*appointment.Appointment {
	if loc == nil {
		loc = time.Local
	}

	var out []*appointment.Appointment
	for _, b := range f.Bookings {
		for _, item := range b.BookingServiceItems {
			if item.IsOptimistic {
				continue
			}

			start, err := time.Parse(time.RFC3339, item.ScheduledStartTime)
			if err != nil {
				logger.Warn("skipping service item with invalid start time",
					slog.String("booking_id", b.ID),
					slog.String("item_id", item.ID),
					slog.String("scheduled_start_time", item.ScheduledStartTime),
				)
				continue
			}

			a, err := appointment.Reconstruct(appointment.Fields{
				ID:                 item.ID,
				BookingID:          b.ID,
				ClientName:         b.Client.FullName,
				ClientPhone:        b.Client.Phone,
				ServiceName:        item.Service.Name,
				ServiceDescription: item.Service.Description,
				StaffID:            item.AssignedTo.ID,
				Start:              start.In(loc),
				DurationMinutes:    item.Duration,
				Status:             appointment.Status(b.Status),
				PriceCents:         toCents(item.FinalPrice),
				PaymentMode:        b.PaymentMode,
				Notes:              b.Notes,
			})
			if err != nil {
				logger.Warn("skipping invalid service item",
					slog.String("booking_id", b.ID),
					slog.String("item_id", item.ID),
					slog.String("error", err.Error()),
				)
				continue
			}
			out = append(out, a)
		}
	}
	return out
}

func (f *File) StaffMembers(logger *slog.Logger) []*staff.Staff {
	out := make([]*staff.Staff, 0, len(f.Employees))
	for _, e := range f.Employees {
		s, err := staff.NewStaff(e.ID, e.Name, e.Designation, e.Email, e.Phone, e.CommissionRate, patch.Coalesce(e.IsActive, true))
		if err != nil {
			logger.Warn("skipping invalid employee", slog.String("employee_id", e.ID), slog.String("error", err.Error()))
			continue
		}
		out = append(out, s)
	}
	return out
}

func (f *File) Accounts(logger *slog.Logger) []*user.User {
	out := make([]*user.User, 0, len(f.Users))
	for _, u := range f.Users {
		email, err := user.NewEmail(u.Email)
		if err != nil {
			logger.Warn("skipping user with invalid email", slog.String("user_id", u.ID))
			continue
		}
		userType, err := user.NewUserType(u.UserType)
		if err != nil {
			logger.Warn("skipping user with unknown user type", slog.String("user_id", u.ID), slog.String("user_type", u.UserType))
			continue
		}
		account, err := user.NewUser(u.ID, u.Name, email, userType, u.Permissions)
		if err != nil {
			logger.Warn("skipping invalid user", slog.String("user_id", u.ID), slog.String("error", err.Error()))
			continue
		}
		out = append(out, account)
	}
	return out
}

// ServiceNames is the catalog offered by the creation prompt, in fixture order
// without duplicates.
func (f *File) ServiceNames() []string {
	seen := make(map[string]struct{}, len(f.Services))
	var names []string
	for _, s := range f.Services {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

func toCents(major float64) int64 {
	return int64(math.Round(major * 100))
}
