package user

import (
	"errors"
	"slices"
	"strings"
)

var ErrEmptyUserID = errors.New("user id cannot be empty")

// User is a dashboard account from the seed data. Accounts are read-only.
type User struct {
	id          string
	name        string
	email       Email
	userType    UserType
	permissions []string
}

func NewUser(id, name string, email Email, userType UserType, permissions []string) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyUserID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyUserName
	}
	return &User{
		id:          id,
		name:        name,
		email:       email,
		userType:    userType,
		permissions: slices.Clone(permissions),
	}, nil
}

func (u *User) HasPermission(p string) bool {
	return slices.Contains(u.permissions, p)
}

func (u *User) ID() string            { return u.id }
func (u *User) Name() string          { return u.name }
func (u *User) Email() Email          { return u.email }
func (u *User) UserType() UserType    { return u.userType }
func (u *User) Permissions() []string { return slices.Clone(u.permissions) }
