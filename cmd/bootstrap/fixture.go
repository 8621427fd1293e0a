package bootstrap

import (
	"log/slog"
	"time"

	"salon-dashboard/internal/domain/timegrid"
	"salon-dashboard/internal/infra/fixture"
	"salon-dashboard/internal/pkg/config"

	"go.uber.org/fx"
)

var FixtureModule = fx.Module("fixture",
	fx.Provide(
		NewSeed,
		NewGeometry,
	),
)

// NewSeed loads the demo data once at startup; the service has no other data source.
func NewSeed(logger *slog.Logger, cfg config.Config, loc *time.Location) (*fixture.Seed, error) {
	f, err := fixture.Load(logger, cfg.Fixture.Path)
	if err != nil {
		return nil, err
	}
	seed := f.Build(logger, loc)
	logger.Info("seed built",
		slog.Int("appointments", len(seed.Appointments)),
		slog.Int("staff", len(seed.Staff)),
		slog.Int("users", len(seed.Users)),
	)
	return seed, nil
}

func NewGeometry(cfg config.Config) (*timegrid.Geometry, error) {
	return timegrid.New(timegrid.Config{
		StartHour:       cfg.Calendar.StartHour,
		EndHour:         cfg.Calendar.EndHour,
		SlotMinutes:     cfg.Calendar.SlotMinutes,
		PixelsPerMinute: cfg.Calendar.PixelsPerMinute,
	})
}
