package user

type UserType string

const (
	UserTypeAdmin        UserType = "admin"
	UserTypeOwner        UserType = "owner"
	UserTypeManager      UserType = "manager"
	UserTypeReceptionist UserType = "receptionist"
	UserTypeStaff        UserType = "staff"
)

func (t UserType) String() string {
	return string(t)
}

func (t UserType) IsValid() bool {
	switch t {
	case UserTypeAdmin, UserTypeOwner, UserTypeManager, UserTypeReceptionist, UserTypeStaff:
		return true
	default:
		return false
	}
}

func NewUserType(s string) (UserType, error) {
	userType := UserType(s)
	if !userType.IsValid() {
		return "", ErrInvalidUserType
	}
	return userType, nil
}
