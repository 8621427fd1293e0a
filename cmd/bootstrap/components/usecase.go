package components

import (
	"context"
	"log/slog"
	"time"

	"salon-dashboard/internal/domain/timegrid"
	"salon-dashboard/internal/infra/fixture"
	"salon-dashboard/internal/pkg/clock"
	"salon-dashboard/internal/pkg/config"
	"salon-dashboard/internal/pkg/metrics"
	"salon-dashboard/internal/pkg/patch"
	"salon-dashboard/internal/usecase"
	"salon-dashboard/internal/usecase/commands"
	"salon-dashboard/internal/usecase/grid"
	"salon-dashboard/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseGridModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Options(
	fx.Provide(
		func(loc *time.Location) clock.Clock {
			return clock.NewRealClock(loc)
		},
	),
	fx.Invoke(metrics.Register),
)

var usecaseGridModule = fx.Module("usecase/grid",
	fx.Provide(
		NewIndicator,
		NewGridDeps,
		grid.NewSessions,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		fx.Annotate(
			func(s *grid.Sessions) *grid.Sessions { return s },
			fx.As(new(commands.SessionCloser)),
		),
		commands.NewAuthCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewAppointmentQueries,
		queries.NewStaffQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewIndicator ties the now-line ticker to the application lifecycle.
func NewIndicator(lc fx.Lifecycle, logger *slog.Logger, g *timegrid.Geometry, clk clock.Clock, cfg config.Config) *grid.Indicator {
	indicator := grid.NewIndicator(logger, g, clk, cfg.Calendar.IndicatorRefresh)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go indicator.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return indicator
}

func NewGridDeps(
	logger *slog.Logger,
	g *timegrid.Geometry,
	store grid.ScheduleStore,
	roster grid.StaffRoster,
	clk clock.Clock,
	indicator *grid.Indicator,
	seed *fixture.Seed,
	cfg config.Config,
) grid.Deps {
	opts := grid.DefaultOptions()
	opts.DefaultService = patch.CoalesceZero(cfg.Calendar.DefaultService, opts.DefaultService)
	opts.DefaultDuration = patch.CoalesceZero(cfg.Calendar.DefaultDuration, opts.DefaultDuration)
	opts.ServiceOptions = seed.ServiceNames

	return grid.Deps{
		Logger:    logger,
		Geometry:  g,
		Store:     store,
		Roster:    roster,
		Clock:     clk,
		Indicator: indicator,
		Options:   opts,
	}
}
