package queries

import (
	"time"
)

// UserView represents the signed-in account
type UserView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	UserType    string   `json:"user_type"`
	Permissions []string `json:"permissions"`
}

// AppointmentView is the full record handed to the detail view
type AppointmentView struct {
	ID                 string    `json:"id"`
	BookingID          string    `json:"booking_id"`
	ClientName         string    `json:"client_name"`
	ClientPhone        string    `json:"client_phone"`
	ServiceName        string    `json:"service_name"`
	ServiceDescription string    `json:"service_description"`
	StaffID            string    `json:"staff_id"`
	StaffName          string    `json:"staff_name"`
	Start              time.Time `json:"start"`
	End                time.Time `json:"end"`
	DurationMinutes    int       `json:"duration_minutes"`
	Status             string    `json:"status"`
	PriceCents         int64     `json:"price_cents"`
	PaymentMode        *string   `json:"payment_mode,omitempty"`
	Notes              *string   `json:"notes,omitempty"`
}

// UpcomingItem is one row of the dashboard upcoming-appointments widget
type UpcomingItem struct {
	ID              string    `json:"id"`
	ClientName      string    `json:"client_name"`
	ServiceName     string    `json:"service_name"`
	StaffID         string    `json:"staff_id"`
	StaffName       string    `json:"staff_name"`
	Start           time.Time `json:"start"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
}

// StaffView represents a roster member
type StaffView struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Designation    string  `json:"designation"`
	Initials       string  `json:"initials"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	CommissionRate float64 `json:"commission_rate"`
	Active         bool    `json:"active"`
}
