//go:build unit

package builder

import (
	"salon-dashboard/internal/domain/user"
	"salon-dashboard/internal/usecase/queries"
)

type UserBuilder struct {
	ID          string
	Name        string
	Email       string
	UserType    string
	Permissions []string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:          "usr_001",
		Name:        "Elena Park",
		Email:       "test@example.com",
		UserType:    "owner",
		Permissions: []string{"calendar:read", "calendar:write"},
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	userType, err := user.NewUserType(u.UserType)
	if err != nil {
		return nil, err
	}

	return user.NewUser(u.ID, u.Name, email, userType, u.Permissions)
}

func (u *UserBuilder) MustBuild() *user.User {
	account, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return account
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		UserType:    u.UserType,
		Permissions: u.Permissions,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id string) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithUserType(userType string) *UserBuilder {
	u.UserType = userType
	return u
}

func (u *UserBuilder) WithoutPermissions() *UserBuilder {
	u.Permissions = nil
	return u
}
