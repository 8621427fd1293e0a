package queries

import (
	"context"

	"salon-dashboard/internal/domain/user"
	"salon-dashboard/internal/infra"
	"salon-dashboard/internal/pkg/errs"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

var (
	ErrUserNotFound = errs.New("user not found")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID string) (*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID string) (*UserView, error) {
	account, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrUserNotFound, errs.ErrNotFound)
		}
		return nil, err
	}

	return ToUserView(account), nil
}

func ToUserView(u *user.User) *UserView {
	return &UserView{
		ID:          u.ID(),
		Name:        u.Name(),
		Email:       u.Email().Value(),
		UserType:    u.UserType().String(),
		Permissions: u.Permissions(),
	}
}
