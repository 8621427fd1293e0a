package appointment

import (
	"errors"
	"strings"
)

var ErrNegativePrice = errors.New("price cannot be negative")

type Service struct {
	name        string
	description string
}

func NewService(name, description string) (Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Service{}, ErrEmptyServiceName
	}
	return Service{name: name, description: strings.TrimSpace(description)}, nil
}

func (s Service) Name() string        { return s.name }
func (s Service) Description() string { return s.description }

// Money is held in minor units.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Major() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}
