package domain

// UserRole represents a user's role in the dashboard.
type UserRole string

// User roles.
const (
	UserRoleAdmin       UserRole = "Admin"
	UserRoleReviewer    UserRole = "Reviewer"
	UserRoleContributor UserRole = "Contributor"
)

// IsValid checks if the user role is valid.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleReviewer, UserRoleContributor:
		return true
	}
	return false
}

// UserStatus represents whether a user account is active.
type UserStatus string

// User statuses.
const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// IsValid checks if the user status is valid.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive:
		return true
	}
	return false
}

// User represents a dashboard user record.
type User struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Role   UserRole   `json:"role"`
	Email  string     `json:"email"`
	Status UserStatus `json:"status"`
}
