package bootstrap

import (
	"time"

	"salon-dashboard/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewCalendarLocation,
	),
)

func NewCalendarLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Calendar.Location()
}
