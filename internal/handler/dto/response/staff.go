package response

import (
	"salon-dashboard/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type StaffResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Designation    string  `json:"designation"`
	Initials       string  `json:"initials"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	CommissionRate float64 `json:"commissionRate"`
	Active         bool    `json:"active"`
}

func FromStaffViews(views []*queries.StaffView) ([]StaffResponse, error) {
	res := make([]StaffResponse, 0, len(views))
	if len(views) == 0 {
		return res, nil
	}
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}
