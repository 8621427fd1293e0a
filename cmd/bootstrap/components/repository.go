package components

import (
	"log/slog"

	"salon-dashboard/internal/infra/fixture"
	"salon-dashboard/internal/infra/memstore"
	"salon-dashboard/internal/usecase/grid"
	"salon-dashboard/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewScheduleStore,
			fx.As(new(grid.ScheduleStore)),
			fx.As(new(queries.AppointmentReadStore)),
		),
		fx.Annotate(
			NewStaffRoster,
			fx.As(new(grid.StaffRoster)),
			fx.As(new(queries.StaffReadStore)),
		),
		fx.Annotate(
			NewUserDirectory,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewScheduleStore(logger *slog.Logger, seed *fixture.Seed) (*memstore.ScheduleStore, error) {
	return memstore.NewScheduleStore(logger, seed.Appointments)
}

func NewStaffRoster(seed *fixture.Seed) (*memstore.StaffRoster, error) {
	return memstore.NewStaffRoster(seed.Staff)
}

func NewUserDirectory(seed *fixture.Seed) (*memstore.UserDirectory, error) {
	return memstore.NewUserDirectory(seed.Users)
}
