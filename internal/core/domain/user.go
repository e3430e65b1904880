package domain

import "time"

// Staff roles that may use the cashier API.
const (
	RoleCashier = "cashier"
	RoleAdmin   = "admin"
)

// StaffUser is a back-office account that signs in to record payments.
type StaffUser struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
	Timestamps
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// AuthToken is a signed access token and when it stops being accepted.
type AuthToken struct {
	Token     string
	ExpiresAt time.Time
	User      StaffUser
}
