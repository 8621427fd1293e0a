package queries

import (
	"context"

	"salon-dashboard/internal/domain/staff"
)

//go:generate mockgen -source=staff.go -destination=../../../tests/mock/queries/staff.go -package=queriesmock

type StaffQueries interface {
	List(ctx context.Context, activeOnly bool) ([]*StaffView, error)
}

type staffQueriesImpl struct {
	roster StaffReadStore
}

func NewStaffQueries(roster StaffReadStore) StaffQueries {
	return &staffQueriesImpl{roster: roster}
}

func (q *staffQueriesImpl) List(ctx context.Context, activeOnly bool) ([]*StaffView, error) {
	members := q.roster.All(ctx)
	out := make([]*StaffView, 0, len(members))
	for _, m := range members {
		if activeOnly && !m.IsActive() {
			continue
		}
		out = append(out, ToStaffView(m))
	}
	return out, nil
}

func ToStaffView(m *staff.Staff) *StaffView {
	return &StaffView{
		ID:             m.ID(),
		Name:           m.Name(),
		Designation:    m.Designation(),
		Initials:       m.Initials(),
		Email:          m.Email(),
		Phone:          m.Phone(),
		CommissionRate: m.CommissionRate(),
		Active:         m.IsActive(),
	}
}
