package domain

import "time"

const (
	RoleCustomer  = "customer"
	RoleVendor    = "vendor"
	RoleCollector = "collector"
)

// UserProfile is the cached profile of the authenticated user.
type UserProfile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Latitude  float64   `json:"latitude,omitempty"`
	Longitude float64   `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
