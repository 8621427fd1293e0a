package appointment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyClientName  = errors.New("client name cannot be empty")
	ErrEmptyServiceName = errors.New("service name cannot be empty")
	ErrEmptyStaffID     = errors.New("staff id cannot be empty")
	ErrInvalidDuration  = errors.New("duration must be positive")
	ErrInvalidStatus    = errors.New("invalid appointment status")
	ErrMissingStart     = errors.New("scheduled start time is required")
)

// Fields is the flat form of an appointment used to rebuild records from seed data
// and to hand copies to the outer layers.
type Fields struct {
	ID                 string
	BookingID          string
	ClientName         string
	ClientPhone        string
	ServiceName        string
	ServiceDescription string
	StaffID            string
	Start              time.Time
	DurationMinutes    int
	Status             Status
	PriceCents         int64
	PaymentMode        *string
	Notes              *string
}

// Draft is what the creation prompt collects.
type Draft struct {
	ClientName      string
	ServiceName     string
	StaffID         string
	Start           time.Time
	DurationMinutes int
}

func (d Draft) Book() (*Appointment, error) {
	service, err := NewService(d.ServiceName, "")
	if err != nil {
		return nil, err
	}
	return New(d.ClientName, service, d.StaffID, d.Start, d.DurationMinutes)
}

type Appointment struct {
	id          string
	bookingID   string
	clientName  string
	clientPhone string
	service     Service
	staffID     string
	start       time.Time
	durationMin int
	status      Status
	price       Money
	paymentMode *string
	notes       *string
}

// New books a fresh appointment from the creation prompt: confirmed, zero price,
// no booking group of its own.
func New(clientName string, service Service, staffID string, start time.Time, durationMin int) (*Appointment, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return nil, ErrEmptyClientName
	}
	if service.Name() == "" {
		return nil, ErrEmptyServiceName
	}
	if err := validateSchedule(staffID, start, durationMin); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	return &Appointment{
		id:          id,
		bookingID:   id,
		clientName:  clientName,
		service:     service,
		staffID:     staffID,
		start:       start,
		durationMin: durationMin,
		status:      StatusConfirmed,
	}, nil
}

// Reconstruct rebuilds a record loaded from seed data. The status is kept as given;
// display code normalizes unknown values.
func Reconstruct(f Fields) (*Appointment, error) {
	if strings.TrimSpace(f.ID) == "" {
		return nil, errors.New("appointment id cannot be empty")
	}
	if err := validateSchedule(f.StaffID, f.Start, f.DurationMinutes); err != nil {
		return nil, err
	}
	price, err := NewMoney(f.PriceCents)
	if err != nil {
		return nil, err
	}

	return &Appointment{
		id:          f.ID,
		bookingID:   f.BookingID,
		clientName:  f.ClientName,
		clientPhone: f.ClientPhone,
		service:     Service{name: f.ServiceName, description: f.ServiceDescription},
		staffID:     f.StaffID,
		start:       f.Start,
		durationMin: f.DurationMinutes,
		status:      f.Status,
		price:       price,
		paymentMode: copyString(f.PaymentMode),
		notes:       copyString(f.Notes),
	}, nil
}

// MoveTo reassigns the appointment; every other field is left untouched.
func (a *Appointment) MoveTo(staffID string, start time.Time) error {
	if err := validateSchedule(staffID, start, a.durationMin); err != nil {
		return err
	}
	a.staffID = staffID
	a.start = start
	return nil
}

func (a *Appointment) Clone() *Appointment {
	c := *a
	c.paymentMode = copyString(a.paymentMode)
	c.notes = copyString(a.notes)
	return &c
}

func (a *Appointment) End() time.Time {
	return a.start.Add(time.Duration(a.durationMin) * time.Minute)
}

func (a *Appointment) IsOnDay(day time.Time) bool {
	start := a.start.In(day.Location())
	y1, m1, d1 := start.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (a *Appointment) IsCancelled() bool {
	return a.status == StatusCancelled
}

func (a *Appointment) Fields() Fields {
	return Fields{
		ID:                 a.id,
		BookingID:          a.bookingID,
		ClientName:         a.clientName,
		ClientPhone:        a.clientPhone,
		ServiceName:        a.service.Name(),
		ServiceDescription: a.service.Description(),
		StaffID:            a.staffID,
		Start:              a.start,
		DurationMinutes:    a.durationMin,
		Status:             a.status,
		PriceCents:         a.price.Cents(),
		PaymentMode:        copyString(a.paymentMode),
		Notes:              copyString(a.notes),
	}
}

func (a *Appointment) ID() string           { return a.id }
func (a *Appointment) BookingID() string    { return a.bookingID }
func (a *Appointment) ClientName() string   { return a.clientName }
func (a *Appointment) ClientPhone() string  { return a.clientPhone }
func (a *Appointment) Service() Service     { return a.service }
func (a *Appointment) StaffID() string      { return a.staffID }
func (a *Appointment) Start() time.Time     { return a.start }
func (a *Appointment) DurationMinutes() int { return a.durationMin }
func (a *Appointment) Status() Status       { return a.status }
func (a *Appointment) Price() Money         { return a.price }
func (a *Appointment) PaymentMode() *string { return copyString(a.paymentMode) }
func (a *Appointment) Notes() *string       { return copyString(a.notes) }

func validateSchedule(staffID string, start time.Time, durationMin int) error {
	if strings.TrimSpace(staffID) == "" {
		return ErrEmptyStaffID
	}
	if start.IsZero() {
		return ErrMissingStart
	}
	if durationMin <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
