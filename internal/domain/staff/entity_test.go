//go:build unit

package staff_test

import (
	"strings"
	"testing"

	"salon-dashboard/internal/domain/staff"
	"salon-dashboard/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaff(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.StaffBuilder)
		errIs  error
	}{
		{name: "基本成功ケース", mutate: func(*builder.StaffBuilder) {}},
		{name: "非アクティブOK", mutate: func(b *builder.StaffBuilder) { b.AsInactive() }},
		{name: "ID空NG", mutate: func(b *builder.StaffBuilder) { b.WithID("") }, errIs: staff.ErrEmptyStaffID},
		{name: "名前空NG", mutate: func(b *builder.StaffBuilder) { b.WithName("   ") }, errIs: staff.ErrEmptyStaffName},
		{name: "名前が長すぎNG", mutate: func(b *builder.StaffBuilder) { b.WithName(strings.Repeat("a", staff.MaxStaffNameLength+1)) }, errIs: staff.ErrStaffNameTooLong},
		{name: "歩合率100超NG", mutate: func(b *builder.StaffBuilder) { b.WithCommissionRate(101) }, errIs: staff.ErrInvalidCommission},
		{name: "歩合率マイナスNG", mutate: func(b *builder.StaffBuilder) { b.WithCommissionRate(-1) }, errIs: staff.ErrInvalidCommission},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewStaffBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.Nil(t, actual)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestInitials(t *testing.T) {
	m := builder.NewStaffBuilder().WithName("Maria  de Santos").MustBuild()
	assert.Equal(t, "MDS", m.Initials())
}

func TestActiveIDs(t *testing.T) {
	members := []*staff.Staff{
		builder.NewStaffBuilder().WithID("emp_1").MustBuild(),
		builder.NewStaffBuilder().WithID("emp_2").AsInactive().MustBuild(),
		builder.NewStaffBuilder().WithID("emp_3").MustBuild(),
	}

	set := staff.ActiveIDs(members)
	assert.True(t, set.Has("emp_1"))
	assert.False(t, set.Has("emp_2"))
	assert.True(t, set.Has("emp_3"))
	assert.False(t, set.Has("emp_404"))

	assert.Equal(t, set, staff.NewIDSet("emp_1", "emp_3"))
}
