package memstore

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"salon-dashboard/internal/domain/appointment"
	"salon-dashboard/internal/domain/staff"
	"salon-dashboard/internal/infra"
)

// ScheduleStore owns the authoritative appointment collection. Reads hand out clones
// so callers never alias stored records.
type ScheduleStore struct {
	logger *slog.Logger

	mu           sync.RWMutex
	appointments []*appointment.Appointment
	byID         map[string]int
}

func NewScheduleStore(logger *slog.Logger, seed []*appointment.Appointment) (*ScheduleStore, error) {
	s := &ScheduleStore{
		logger:       logger,
		appointments: make([]*appointment.Appointment, 0, len(seed)),
		byID:         make(map[string]int, len(seed)),
	}
	for _, a := range seed {
		if _, ok := s.byID[a.ID()]; ok {
			return nil, infra.WrapStoreErr(logger, infra.KindDuplicateID, "duplicate appointment id "+a.ID(), nil)
		}
		s.byID[a.ID()] = len(s.appointments)
		s.appointments = append(s.appointments, a.Clone())
	}
	return s, nil
}

// DayView returns appointments starting on date's calendar day (in date's location)
// for the given staff, ordered by start time. Equal starts keep insertion order.
func (s *ScheduleStore) DayView(_ context.Context, date time.Time, active staff.IDSet) []*appointment.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*appointment.Appointment, 0)
	for _, a := range s.appointments {
		if !active.Has(a.StaffID()) || !a.IsOnDay(date) {
			continue
		}
		out = append(out, a.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start().Before(out[j].Start())
	})
	return out
}

// MoveAppointment reassigns staff and start. Unknown ids leave the collection
// untouched and report false.
func (s *ScheduleStore) MoveAppointment(_ context.Context, id, staffID string, start time.Time) (*appointment.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[id]
	if !ok {
		s.logger.Debug("move ignored for unknown appointment", slog.String("appointment_id", id))
		return nil, false
	}

	moved := s.appointments[idx].Clone()
	if err := moved.MoveTo(staffID, start); err != nil {
		s.logger.Warn("move rejected",
			slog.String("appointment_id", id),
			slog.String("staff_id", staffID),
			slog.String("error", err.Error()),
		)
		return nil, false
	}
	s.appointments[idx] = moved
	return moved.Clone(), true
}

// CreateAppointment appends a new confirmed appointment. Overlaps are allowed.
func (s *ScheduleStore) CreateAppointment(_ context.Context, draft appointment.Draft) (*appointment.Appointment, error) {
	a, err := draft.Book()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[a.ID()] = len(s.appointments)
	s.appointments = append(s.appointments, a)
	return a.Clone(), nil
}

func (s *ScheduleStore) FindByID(_ context.Context, id string) (*appointment.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, infra.NewStoreErr(infra.KindNotFound, "appointment not found")
	}
	return s.appointments[idx].Clone(), nil
}

// All returns a snapshot in insertion order.
func (s *ScheduleStore) All(_ context.Context) []*appointment.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*appointment.Appointment, len(s.appointments))
	for i, a := range s.appointments {
		out[i] = a.Clone()
	}
	return out
}

// Upcoming lists non-cancelled appointments starting at or after now, soonest first.
// A non-positive limit means no limit.
func (s *ScheduleStore) Upcoming(_ context.Context, now time.Time, limit int) []*appointment.Appointment {
	s.mu.RLock()
	out := make([]*appointment.Appointment, 0)
	for _, a := range s.appointments {
		if a.IsCancelled() || a.Start().Before(now) {
			continue
		}
		out = append(out, a.Clone())
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start().Before(out[j].Start())
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
