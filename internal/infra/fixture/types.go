package fixture

// File mirrors the seed document. JSON and YAML share the same field names.
type File struct {
	Bookings  []Booking  `json:"bookings" yaml:"bookings"`
	Employees []Employee `json:"employees" yaml:"employees"`
	Services  []Service  `json:"services" yaml:"services"`
	Clients   []Client   `json:"clients" yaml:"clients"`
	Users     []User     `json:"users" yaml:"users"`
}

type Booking struct {
	ID                  string        `json:"_id" yaml:"_id"`
	Client              Client        `json:"client" yaml:"client"`
	Status              string        `json:"status" yaml:"status"`
	PaymentMode         *string       `json:"paymentMode,omitempty" yaml:"paymentMode,omitempty"`
	Notes               *string       `json:"notes,omitempty" yaml:"notes,omitempty"`
	BookingServiceItems []ServiceItem `json:"bookingServiceItems" yaml:"bookingServiceItems"`
}

type ServiceItem struct {
	ID                 string     `json:"_id" yaml:"_id"`
	Service            Service    `json:"service" yaml:"service"`
	AssignedTo         AssignedTo `json:"assignedTo" yaml:"assignedTo"`
	ScheduledStartTime string     `json:"scheduledStartTime" yaml:"scheduledStartTime"`
	Duration           int        `json:"duration" yaml:"duration"`
	FinalPrice         float64    `json:"finalPrice" yaml:"finalPrice"`
	IsOptimistic       bool       `json:"isOptimistic,omitempty" yaml:"isOptimistic,omitempty"`
}

type AssignedTo struct {
	ID          string `json:"_id" yaml:"_id"`
	Name        string `json:"name" yaml:"name"`
	Designation string `json:"designation" yaml:"designation"`
}

type Employee struct {
	ID             string  `json:"_id" yaml:"_id"`
	Name           string  `json:"name" yaml:"name"`
	Designation    string  `json:"designation" yaml:"designation"`
	Email          string  `json:"email" yaml:"email"`
	Phone          string  `json:"phone" yaml:"phone"`
	CommissionRate float64 `json:"commissionRate" yaml:"commissionRate"`
	// absent means active
	IsActive *bool `json:"isActive,omitempty" yaml:"isActive,omitempty"`
}

type Service struct {
	ID          string  `json:"_id,omitempty" yaml:"_id,omitempty"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Duration    int     `json:"duration,omitempty" yaml:"duration,omitempty"`
	Price       float64 `json:"price,omitempty" yaml:"price,omitempty"`
	Category    string  `json:"category,omitempty" yaml:"category,omitempty"`
}

type Client struct {
	ID       string `json:"_id,omitempty" yaml:"_id,omitempty"`
	FullName string `json:"fullName" yaml:"fullName"`
	Phone    string `json:"phone" yaml:"phone"`
	Email    string `json:"email,omitempty" yaml:"email,omitempty"`
}

type User struct {
	ID          string   `json:"_id" yaml:"_id"`
	Name        string   `json:"name" yaml:"name"`
	Email       string   `json:"email" yaml:"email"`
	UserType    string   `json:"userType" yaml:"userType"`
	Permissions []string `json:"permissions" yaml:"permissions"`
}
