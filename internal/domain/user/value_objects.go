package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidUserType = errors.New("invalid user type")
	ErrEmptyUserName   = errors.New("user name cannot be empty")
	ErrEmptyPassword   = errors.New("password is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Key is the lookup form; addresses match case-insensitively.
func (e Email) Key() string {
	return strings.ToLower(e.value)
}

func (e Email) Matches(other string) bool {
	return strings.EqualFold(e.value, strings.TrimSpace(other))
}

// Password is only checked for presence; demo accounts accept any non-empty value.
type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 1 {
		return Password{}, ErrEmptyPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
