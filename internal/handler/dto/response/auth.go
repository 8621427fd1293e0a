package response

import (
	"salon-dashboard/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	UserType    string   `json:"userType"`
	Permissions []string `json:"permissions"`
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	ExpiresIn   int64         `json:"expiresIn"`
	User        *UserResponse `json:"user"`
}

func FromUserView(v *queries.UserView) (*UserResponse, error) {
	var res UserResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	if res.Permissions == nil {
		res.Permissions = []string{}
	}
	return &res, nil
}
