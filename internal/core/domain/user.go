package domain

import (
	"errors"
	"time"
)

// The role set is closed. Unknown role values are never rejected outright at
// the authorization layer; they simply match no permission table entry and
// fail closed.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
	RoleCashier = "cashier"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountInactive = errors.New("account is inactive")
var ErrInvalidRole = errors.New("invalid role")
var ErrLastAdmin = errors.New("cannot delete the last admin user")
var ErrRegistrationDisabled = errors.New("public registration is disabled")

// ValidRole reports whether r belongs to the closed role set.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff, RoleCashier:
		return true
	}
	return false
}

// User models an authenticated actor in the system.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Mobile         string    `json:"mobile,omitempty"`
	PasswordHash   string    `json:"-"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	JoinedAt       time.Time `json:"joined_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Active reports whether the user may hold a session.
func (u *User) Active() bool {
	return u != nil && u.Status == StatusActive
}
