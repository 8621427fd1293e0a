package auth

import (
	"errors"

	"salon-dashboard/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Credentials is a login attempt. The password is only checked for presence.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

// Authenticate accepts an account whose address matches case-insensitively.
func (c Credentials) Authenticate(account *user.User) error {
	if account == nil || !account.Email().Matches(c.email.Value()) {
		return ErrInvalidCredentials
	}
	return nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}
