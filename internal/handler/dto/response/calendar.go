package response

import (
	"time"

	"salon-dashboard/internal/domain/timegrid"
	"salon-dashboard/internal/usecase/grid"
)

type BoardResponse struct {
	Date        string           `json:"date"`
	HourHeight  float64          `json:"hourHeight"`
	TotalHeight float64          `json:"totalHeight"`
	Axis        []AxisMarker     `json:"axis"`
	Columns     []ColumnResponse `json:"columns"`
	// -1 when the current time is outside the workday window
	CurrentTimeTop float64         `json:"currentTimeTop"`
	Prompt         *PromptResponse `json:"prompt"`
}

type AxisMarker struct {
	Label string    `json:"label"`
	Time  time.Time `json:"time"`
	Top   float64   `json:"top"`
}

type ColumnResponse struct {
	StaffID     string          `json:"staffId"`
	Name        string          `json:"name"`
	Designation string          `json:"designation"`
	Initials    string          `json:"initials"`
	State       string          `json:"state"`
	Target      *TargetResponse `json:"target"`
	Cards       []CardResponse  `json:"cards"`
}

type TargetResponse struct {
	StaffID string    `json:"staffId"`
	Time    time.Time `json:"time"`
	Top     float64   `json:"top"`
}

type CardResponse struct {
	AppointmentID   string    `json:"appointmentId"`
	ClientName      string    `json:"clientName"`
	ServiceName     string    `json:"serviceName"`
	Status          string    `json:"status"`
	Start           time.Time `json:"start"`
	DurationMinutes int       `json:"durationMinutes"`
	Top             float64   `json:"top"`
	Height          float64   `json:"height"`
	DisplayHeight   float64   `json:"displayHeight"`
	TimeLabel       string    `json:"timeLabel,omitempty"`
	ShowTime        bool      `json:"showTime"`
}

type PromptResponse struct {
	StaffID         string    `json:"staffId"`
	StaffName       string    `json:"staffName"`
	Time            time.Time `json:"time"`
	Top             float64   `json:"top"`
	DefaultService  string    `json:"defaultService"`
	DefaultDuration int       `json:"defaultDuration"`
	DurationOptions []int     `json:"durationOptions"`
	ServiceOptions  []string  `json:"serviceOptions"`
}

type DateResponse struct {
	Date string `json:"date"`
}

type DragTokenResponse struct {
	Token string `json:"token"`
}

type DropResponse struct {
	Outcome     string               `json:"outcome"`
	Appointment *AppointmentResponse `json:"appointment,omitempty"`
}

func FromBoard(b grid.Board) *BoardResponse {
	res := &BoardResponse{
		Date:           b.Date.Format("2006-01-02"),
		HourHeight:     b.HourHeight,
		TotalHeight:    b.TotalHeight,
		Axis:           make([]AxisMarker, 0, len(b.Axis)),
		Columns:        make([]ColumnResponse, 0, len(b.Columns)),
		CurrentTimeTop: timegrid.NoIndicator,
		Prompt:         FromPrompt(b.Prompt),
	}
	if b.Indicator.Visible {
		res.CurrentTimeTop = b.Indicator.Top
	}
	for _, m := range b.Axis {
		res.Axis = append(res.Axis, AxisMarker{Label: m.Label, Time: m.Time, Top: m.Top})
	}
	for _, col := range b.Columns {
		cr := ColumnResponse{
			StaffID:     col.StaffID,
			Name:        col.Name,
			Designation: col.Designation,
			Initials:    col.Initials,
			State:       string(col.State),
			Target:      FromTarget(col.Target),
			Cards:       make([]CardResponse, 0, len(col.Cards)),
		}
		for _, card := range col.Cards {
			cr.Cards = append(cr.Cards, CardResponse{
				AppointmentID:   card.AppointmentID,
				ClientName:      card.ClientName,
				ServiceName:     card.ServiceName,
				Status:          card.Status.String(),
				Start:           card.Start,
				DurationMinutes: card.DurationMinutes,
				Top:             card.Top,
				Height:          card.Height,
				DisplayHeight:   card.DisplayHeight,
				TimeLabel:       card.TimeLabel,
				ShowTime:        card.ShowTime,
			})
		}
		res.Columns = append(res.Columns, cr)
	}
	return res
}

func FromTarget(t *grid.Target) *TargetResponse {
	if t == nil {
		return nil
	}
	return &TargetResponse{StaffID: t.StaffID, Time: t.Time, Top: t.Top}
}

func FromPrompt(p *grid.Prompt) *PromptResponse {
	if p == nil {
		return nil
	}
	return &PromptResponse{
		StaffID:         p.StaffID,
		StaffName:       p.StaffName,
		Time:            p.Time,
		Top:             p.Top,
		DefaultService:  p.DefaultService,
		DefaultDuration: p.DefaultDuration,
		DurationOptions: p.DurationOptions,
		ServiceOptions:  p.ServiceOptions,
	}
}
