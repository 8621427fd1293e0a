package response

import (
	"time"

	"salon-dashboard/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID                 string    `json:"id"`
	BookingID          string    `json:"bookingId"`
	ClientName         string    `json:"clientName"`
	ClientPhone        string    `json:"clientPhone"`
	ServiceName        string    `json:"serviceName"`
	ServiceDescription string    `json:"serviceDescription"`
	StaffID            string    `json:"staffId"`
	StaffName          string    `json:"staffName"`
	Start              time.Time `json:"start"`
	End                time.Time `json:"end"`
	DurationMinutes    int       `json:"durationMinutes"`
	Status             string    `json:"status"`
	PriceCents         int64     `json:"priceCents"`
	PaymentMode        *string   `json:"paymentMode,omitempty"`
	Notes              *string   `json:"notes,omitempty"`
}

type UpcomingResponse struct {
	ID              string    `json:"id"`
	ClientName      string    `json:"clientName"`
	ServiceName     string    `json:"serviceName"`
	StaffID         string    `json:"staffId"`
	StaffName       string    `json:"staffName"`
	Start           time.Time `json:"start"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
}

func FromAppointmentView(v *queries.AppointmentView) (*AppointmentResponse, error) {
	var res AppointmentResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromUpcomingItems(items []*queries.UpcomingItem) ([]UpcomingResponse, error) {
	res := make([]UpcomingResponse, 0, len(items))
	if len(items) == 0 {
		return res, nil
	}
	if err := copier.Copy(&res, &items); err != nil {
		return nil, err
	}
	return res, nil
}
