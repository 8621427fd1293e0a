// Package timegrid maps between clock time and vertical pixel offsets inside the
// bounded workday window of the day-view calendar.
package timegrid

import (
	"errors"
	"math"
	"time"
)

const (
	DefaultStartHour       = 8
	DefaultEndHour         = 20
	DefaultSlotMinutes     = 15
	DefaultPixelsPerMinute = 2.5

	// NoIndicator is the wire sentinel for "no current-time line".
	NoIndicator = -1
)

var (
	ErrInvalidWindow       = errors.New("workday start hour must be before end hour within 0..24")
	ErrInvalidSlot         = errors.New("slot granularity must be positive")
	ErrInvalidPixelDensity = errors.New("pixel density must be positive")
)

type Config struct {
	StartHour       int
	EndHour         int
	SlotMinutes     int
	PixelsPerMinute float64
}

func DefaultConfig() Config {
	return Config{
		StartHour:       DefaultStartHour,
		EndHour:         DefaultEndHour,
		SlotMinutes:     DefaultSlotMinutes,
		PixelsPerMinute: DefaultPixelsPerMinute,
	}
}

func (c Config) Validate() error {
	if c.StartHour < 0 || c.EndHour > 24 || c.StartHour >= c.EndHour {
		return ErrInvalidWindow
	}
	if c.SlotMinutes <= 0 {
		return ErrInvalidSlot
	}
	if c.PixelsPerMinute <= 0 || math.IsNaN(c.PixelsPerMinute) || math.IsInf(c.PixelsPerMinute, 0) {
		return ErrInvalidPixelDensity
	}
	return nil
}

// Geometry is immutable and safe for concurrent use.
type Geometry struct {
	cfg Config
}

func New(cfg Config) (*Geometry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Geometry{cfg: cfg}, nil
}

func MustNew(cfg Config) *Geometry {
	g, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Geometry) Config() Config { return g.cfg }

func (g *Geometry) SlotDuration() time.Duration {
	return time.Duration(g.cfg.SlotMinutes) * time.Minute
}

func (g *Geometry) HourHeight() float64 {
	return 60 * g.cfg.PixelsPerMinute
}

// TotalHeight is the pixel height of the whole window.
func (g *Geometry) TotalHeight() float64 {
	return float64(g.windowMinutes()) * g.cfg.PixelsPerMinute
}

func (g *Geometry) WindowStart(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), g.cfg.StartHour, 0, 0, 0, day.Location())
}

func (g *Geometry) WindowEnd(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), g.cfg.EndHour, 0, 0, 0, day.Location())
}

// TopOffset positions t relative to the window start of its own calendar day.
// Instants before the window collapse to 0; there is no upper clamp, so a start
// after the window end lands below the visible area.
func (g *Geometry) TopOffset(t time.Time) float64 {
	minutes := wholeMinutes(t.Sub(g.WindowStart(t)))
	if minutes < 0 {
		minutes = 0
	}
	return float64(minutes) * g.cfg.PixelsPerMinute
}

// HeightFor enforces no minimum; card rendering applies its own.
func (g *Geometry) HeightFor(durationMinutes int) float64 {
	return float64(durationMinutes) * g.cfg.PixelsPerMinute
}

// CurrentTimeOffset reports false when now is strictly outside the window.
func (g *Geometry) CurrentTimeOffset(now time.Time) (float64, bool) {
	if now.Before(g.WindowStart(now)) || now.After(g.WindowEnd(now)) {
		return NoIndicator, false
	}
	return g.TopOffset(now), true
}

// TimeSlots returns every hour boundary from window start through window end inclusive.
func (g *Geometry) TimeSlots(day time.Time) []time.Time {
	slots := make([]time.Time, 0, g.cfg.EndHour-g.cfg.StartHour+1)
	for h := g.cfg.StartHour; h <= g.cfg.EndHour; h++ {
		slots = append(slots, time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, day.Location()))
	}
	return slots
}

// SnapPixels floors a raw offset to the nearest earlier slot boundary and returns the
// snapped minutes since window start with the matching pixel offset. Offsets past
// midnight land on the last slot of the same day.
func (g *Geometry) SnapPixels(pixels float64) (int, float64) {
	if pixels < 0 || math.IsNaN(pixels) {
		pixels = 0
	}
	slot := float64(g.cfg.SlotMinutes)
	rawMinutes := math.Min(pixels/g.cfg.PixelsPerMinute, float64(g.lastSlotMinutes()))
	minutes := int(math.Floor(rawMinutes/slot) * slot)
	return minutes, float64(minutes) * g.cfg.PixelsPerMinute
}

// SnapPixelsToTime rounds toward the earlier slot, never the nearer one.
func (g *Geometry) SnapPixelsToTime(day time.Time, pixels float64) time.Time {
	minutes, _ := g.SnapPixels(pixels)
	return g.WindowStart(day).Add(time.Duration(minutes) * time.Minute)
}

// minutes from window start to the last slot boundary before midnight
func (g *Geometry) lastSlotMinutes() int {
	untilMidnight := (24-g.cfg.StartHour)*60 - 1
	return untilMidnight / g.cfg.SlotMinutes * g.cfg.SlotMinutes
}

func (g *Geometry) windowMinutes() int {
	return (g.cfg.EndHour - g.cfg.StartHour) * 60
}

// truncates toward zero like a whole-minute difference
func wholeMinutes(d time.Duration) int {
	return int(d / time.Minute)
}
