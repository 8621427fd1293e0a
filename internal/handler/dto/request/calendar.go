package request

import (
	"strings"
	"time"

	"salon-dashboard/internal/usecase/grid"
)

const DateLayout = "2006-01-02"

type DateAction string

const (
	DateActionPrev  DateAction = "prev"
	DateActionNext  DateAction = "next"
	DateActionToday DateAction = "today"
)

type BoardQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// PointerRequest carries the offset from the top of the column; negative values snap to the first slot.
type PointerRequest struct {
	Y *float64 `json:"y" binding:"required"`
}

type DragStartRequest struct {
	AppointmentID string `json:"appointmentId" binding:"required"`
}

type DropRequest struct {
	Token string `json:"token"`
}

type SelectDateRequest struct {
	Date   string     `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Action DateAction `json:"action" binding:"omitempty,oneof=prev next today"`
}

// ParseDate interprets the date in loc; ok is false when no date was sent.
func (r SelectDateRequest) ParseDate(loc *time.Location) (time.Time, bool, error) {
	return parseDate(r.Date, loc)
}

func (q BoardQuery) ParseDate(loc *time.Location) (time.Time, bool, error) {
	return parseDate(q.Date, loc)
}

type SubmitPromptRequest struct {
	ClientName      string `json:"clientName" binding:"required"`
	ServiceName     string `json:"serviceName"`
	DurationMinutes int    `json:"durationMinutes" binding:"gte=0,lte=1440"`
}

func (r SubmitPromptRequest) ToForm() grid.PromptForm {
	return grid.PromptForm{
		ClientName:      strings.TrimSpace(r.ClientName),
		ServiceName:     strings.TrimSpace(r.ServiceName),
		DurationMinutes: r.DurationMinutes,
	}
}

type UpcomingQuery struct {
	Limit int `form:"limit" binding:"omitempty,gte=1"`
}

type StaffQuery struct {
	ActiveOnly bool `form:"active"`
}

func parseDate(s string, loc *time.Location) (time.Time, bool, error) {
	if s == "" {
		return time.Time{}, false, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
