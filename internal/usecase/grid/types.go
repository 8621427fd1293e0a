package grid

import (
	"time"

	"salon-dashboard/internal/domain/appointment"
)

type ColumnState string

const (
	StateIdle     ColumnState = "idle"
	StateHovering ColumnState = "hovering"
	StateDragOver ColumnState = "drag_over"
)

// Target is the snapped slot a column currently points at.
type Target struct {
	StaffID string
	Time    time.Time
	Top     float64
}

// Prompt is the open creation form, pre-filled from the clicked slot.
type Prompt struct {
	StaffID         string
	StaffName       string
	Time            time.Time
	Top             float64
	DefaultService  string
	DefaultDuration int
	DurationOptions []int
	ServiceOptions  []string
}

type PromptForm struct {
	ClientName      string
	ServiceName     string
	DurationMinutes int
}

type DropOutcome string

const (
	DropMoved              DropOutcome = "moved"
	DropMalformedPayload   DropOutcome = "malformed_payload"
	DropNoTarget           DropOutcome = "no_target"
	DropUnknownAppointment DropOutcome = "unknown_appointment"
)

type DropResult struct {
	Outcome DropOutcome
	Moved   *appointment.Appointment
}

type Options struct {
	DefaultService  string
	DefaultDuration int
	DurationOptions []int
	ServiceOptions  []string
}

func DefaultOptions() Options {
	return Options{
		DefaultService:  "Swedish Massage",
		DefaultDuration: 60,
		DurationOptions: []int{15, 30, 45, 60, 90, 120},
	}
}
