//go:build unit

package grid_test

import (
	"context"
	"testing"
	"time"

	"salon-dashboard/internal/domain/timegrid"
	"salon-dashboard/internal/pkg/clock"
	"salon-dashboard/internal/usecase/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndicator(t *testing.T) {
	geometry := timegrid.MustNew(timegrid.DefaultConfig())
	clk := clock.NewMockClock(at(19, 7, 59))

	ind := grid.NewIndicator(discardLogger(), geometry, clk, time.Minute)

	t.Run("営業時間前は非表示", func(t *testing.T) {
		top, visible := ind.Current()
		assert.False(t, visible)
		assert.Equal(t, float64(timegrid.NoIndicator), top)
	})

	t.Run("リフレッシュで更新", func(t *testing.T) {
		clk.Set(at(19, 8, 30))
		ind.Refresh()
		top, visible := ind.Current()
		assert.True(t, visible)
		assert.InDelta(t, 75.0, top, 1e-9)
	})

	t.Run("キャッシュは次のリフレッシュまで保持", func(t *testing.T) {
		clk.Set(at(19, 20, 1))
		top, visible := ind.Current()
		assert.True(t, visible)
		assert.InDelta(t, 75.0, top, 1e-9)

		ind.Refresh()
		_, visible = ind.Current()
		assert.False(t, visible)
	})
}

func TestIndicatorRun(t *testing.T) {
	geometry := timegrid.MustNew(timegrid.DefaultConfig())
	clk := clock.NewMockClock(at(19, 7, 0))
	ind := grid.NewIndicator(discardLogger(), geometry, clk, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ind.Run(ctx)
		close(done)
	}()

	clk.Set(at(19, 12, 0))
	require.Eventually(t, func() bool {
		_, visible := ind.Current()
		return visible
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("indicator did not stop after cancel")
	}
}
