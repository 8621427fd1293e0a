package staff

import (
	"errors"
	"strings"
)

var (
	ErrEmptyStaffID      = errors.New("staff id cannot be empty")
	ErrEmptyStaffName    = errors.New("staff name cannot be empty")
	ErrStaffNameTooLong  = errors.New("staff name is too long (max 255 characters)")
	ErrInvalidCommission = errors.New("commission rate must be between 0 and 100")
)

const (
	MaxStaffNameLength = 255
)

// Staff is a bookable resource; each active member is one calendar column.
type Staff struct {
	id             string
	name           string
	designation    string
	email          string
	phone          string
	commissionRate float64
	active         bool
}

func NewStaff(id, name, designation, email, phone string, commissionRate float64, active bool) (*Staff, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyStaffID
	}
	if err := validateStaffName(name); err != nil {
		return nil, err
	}
	if commissionRate < 0 || commissionRate > 100 {
		return nil, ErrInvalidCommission
	}

	return &Staff{
		id:             id,
		name:           strings.TrimSpace(name),
		designation:    strings.TrimSpace(designation),
		email:          strings.TrimSpace(email),
		phone:          strings.TrimSpace(phone),
		commissionRate: commissionRate,
		active:         active,
	}, nil
}

func validateStaffName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyStaffName
	}
	if len(name) > MaxStaffNameLength {
		return ErrStaffNameTooLong
	}
	return nil
}

// Initials renders the avatar badge, e.g. "Maria Santos" -> "MS".
func (s *Staff) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(s.name) {
		b.WriteString(strings.ToUpper(part[:1]))
	}
	return b.String()
}

func (s *Staff) ID() string              { return s.id }
func (s *Staff) Name() string            { return s.name }
func (s *Staff) Designation() string     { return s.designation }
func (s *Staff) Email() string           { return s.email }
func (s *Staff) Phone() string           { return s.phone }
func (s *Staff) CommissionRate() float64 { return s.commissionRate }
func (s *Staff) IsActive() bool          { return s.active }

// IDSet is the active-staff filter applied to the day view.
type IDSet map[string]struct{}

func NewIDSet(ids ...string) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func ActiveIDs(members []*Staff) IDSet {
	set := make(IDSet, len(members))
	for _, m := range members {
		if m.IsActive() {
			set[m.id] = struct{}{}
		}
	}
	return set
}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}
