package memstore

import (
	"context"

	"salon-dashboard/internal/domain/staff"
	"salon-dashboard/internal/infra"
)

// StaffRoster is read-only after construction; staff records are immutable.
type StaffRoster struct {
	members []*staff.Staff
	byID    map[string]*staff.Staff
}

func NewStaffRoster(members []*staff.Staff) (*StaffRoster, error) {
	r := &StaffRoster{
		members: make([]*staff.Staff, 0, len(members)),
		byID:    make(map[string]*staff.Staff, len(members)),
	}
	for _, m := range members {
		if _, ok := r.byID[m.ID()]; ok {
			return nil, infra.NewStoreErr(infra.KindDuplicateID, "duplicate staff id "+m.ID())
		}
		r.byID[m.ID()] = m
		r.members = append(r.members, m)
	}
	return r, nil
}

// Active returns active members in roster order; each one is a calendar column.
func (r *StaffRoster) Active(_ context.Context) []*staff.Staff {
	out := make([]*staff.Staff, 0, len(r.members))
	for _, m := range r.members {
		if m.IsActive() {
			out = append(out, m)
		}
	}
	return out
}

func (r *StaffRoster) All(_ context.Context) []*staff.Staff {
	out := make([]*staff.Staff, len(r.members))
	copy(out, r.members)
	return out
}

func (r *StaffRoster) Find(_ context.Context, id string) (*staff.Staff, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, infra.NewStoreErr(infra.KindNotFound, "staff not found")
	}
	return m, nil
}
