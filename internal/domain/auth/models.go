package auth

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleHR       UserRole = "HR"
	RoleManager  UserRole = "MANAGER"
	RoleEmployee UserRole = "EMPLOYEE"
)

var Roles = []UserRole{RoleAdmin, RoleHR, RoleManager, RoleEmployee}

func (r UserRole) Valid() bool {
	for _, candidate := range Roles {
		if r == candidate {
			return true
		}
	}
	return false
}

// User is an authentication identity. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Role       UserRole  `json:"role"`
	EmployeeID string    `json:"employeeId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// AuthPayload is the authenticated principal attached to a request.
type AuthPayload struct {
	UserID     string   `json:"userId"`
	Email      string   `json:"email"`
	Role       UserRole `json:"role"`
	EmployeeID string   `json:"employeeId,omitempty"`
}

type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	Role       UserRole `json:"role"`
	EmployeeID string   `json:"employeeId,omitempty"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  AuthPayload `json:"user"`
}
