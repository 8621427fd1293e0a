package memstore

import (
	"context"
	"strings"

	"salon-dashboard/internal/domain/user"
	"salon-dashboard/internal/infra"
)

type UserDirectory struct {
	byID    map[string]*user.User
	byEmail map[string]*user.User
}

func NewUserDirectory(accounts []*user.User) (*UserDirectory, error) {
	d := &UserDirectory{
		byID:    make(map[string]*user.User, len(accounts)),
		byEmail: make(map[string]*user.User, len(accounts)),
	}
	for _, u := range accounts {
		if _, ok := d.byID[u.ID()]; ok {
			return nil, infra.NewStoreErr(infra.KindDuplicateID, "duplicate user id "+u.ID())
		}
		d.byID[u.ID()] = u
		d.byEmail[u.Email().Key()] = u
	}
	return d, nil
}

// FindByEmail matches case-insensitively.
func (d *UserDirectory) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := d.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, infra.NewStoreErr(infra.KindNotFound, "user not found")
	}
	return u, nil
}

func (d *UserDirectory) FindByID(_ context.Context, id string) (*user.User, error) {
	u, ok := d.byID[id]
	if !ok {
		return nil, infra.NewStoreErr(infra.KindNotFound, "user not found")
	}
	return u, nil
}
