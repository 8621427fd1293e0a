package grid

import (
	"math"
	"time"

	"salon-dashboard/internal/domain/appointment"
	"salon-dashboard/internal/domain/timegrid"
)

const (
	CardGap            = 2.0
	MinCardHeight      = 20.0
	TimeLabelMinHeight = 40.0

	axisLabelLayout = "3 PM"
	cardTimeLayout  = "3:04 PM"
)

// Board is everything a client needs to draw the day view.
type Board struct {
	Date        time.Time
	HourHeight  float64
	TotalHeight float64
	Axis        []AxisMarker
	Columns     []Column
	Indicator   IndicatorView
	Prompt      *Prompt
}

type AxisMarker struct {
	Label string
	Time  time.Time
	Top   float64
}

type Column struct {
	StaffID     string
	Name        string
	Designation string
	Initials    string
	State       ColumnState
	Target      *Target
	Cards       []Card
}

type Card struct {
	AppointmentID   string
	ClientName      string
	ServiceName     string
	Status          appointment.Status
	Start           time.Time
	DurationMinutes int
	Top             float64
	Height          float64
	DisplayHeight   float64
	TimeLabel       string
	ShowTime        bool
}

type IndicatorView struct {
	Visible bool
	Top     float64
}

func buildAxis(g *timegrid.Geometry, day time.Time) []AxisMarker {
	slots := g.TimeSlots(day)
	markers := make([]AxisMarker, len(slots))
	for i, t := range slots {
		markers[i] = AxisMarker{
			Label: t.Format(axisLabelLayout),
			Time:  t,
			Top:   float64(i) * g.HourHeight(),
		}
	}
	return markers
}

// NewCard lays out one appointment. Unknown statuses render as confirmed.
func NewCard(g *timegrid.Geometry, a *appointment.Appointment) Card {
	height := g.HeightFor(a.DurationMinutes())
	card := Card{
		AppointmentID:   a.ID(),
		ClientName:      a.ClientName(),
		ServiceName:     a.Service().Name(),
		Status:          a.Status().Normalize(),
		Start:           a.Start(),
		DurationMinutes: a.DurationMinutes(),
		Top:             g.TopOffset(a.Start()),
		Height:          height,
		DisplayHeight:   math.Max(height-CardGap, MinCardHeight),
		ShowTime:        height > TimeLabelMinHeight,
	}
	if card.ShowTime {
		card.TimeLabel = a.Start().Format(cardTimeLayout)
	}
	return card
}

func groupCards(g *timegrid.Geometry, appts []*appointment.Appointment) map[string][]Card {
	byStaff := make(map[string][]Card)
	for _, a := range appts {
		byStaff[a.StaffID()] = append(byStaff[a.StaffID()], NewCard(g, a))
	}
	return byStaff
}
