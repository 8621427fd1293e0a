package grid

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"salon-dashboard/internal/domain/timegrid"
	"salon-dashboard/internal/pkg/clock"
)

const DefaultIndicatorRefresh = time.Minute

// Indicator caches the current-time line position. It follows the wall clock only,
// never the date a session is viewing.
type Indicator struct {
	geometry *timegrid.Geometry
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger

	mu      sync.RWMutex
	top     float64
	visible bool
}

func NewIndicator(logger *slog.Logger, g *timegrid.Geometry, clk clock.Clock, interval time.Duration) *Indicator {
	if interval <= 0 {
		interval = DefaultIndicatorRefresh
	}
	i := &Indicator{
		geometry: g,
		clock:    clk,
		interval: interval,
		logger:   logger,
	}
	i.Refresh()
	return i
}

func (i *Indicator) Refresh() {
	top, visible := i.geometry.CurrentTimeOffset(i.clock.Now())

	i.mu.Lock()
	i.top, i.visible = top, visible
	i.mu.Unlock()
}

func (i *Indicator) Current() (float64, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.top, i.visible
}

// Run refreshes on every tick until ctx is cancelled.
func (i *Indicator) Run(ctx context.Context) {
	ticker := time.NewTicker(i.interval)
	defer ticker.Stop()

	i.logger.Debug("current-time indicator started", slog.Duration("interval", i.interval))
	for {
		select {
		case <-ctx.Done():
			i.logger.Debug("current-time indicator stopped")
			return
		case <-ticker.C:
			i.Refresh()
		}
	}
}
