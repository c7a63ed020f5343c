package user

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicate is returned by repositories when the username or email is taken.
var ErrDuplicate = errors.New("username or email already exists")

// Role is the account role stored on a user row.
type Role string

const (
	RoleGuest Role = "guest"
	RoleAdmin Role = "admin"
)

// User is a registered account. Password is kept exactly as submitted.
type User struct {
	ID       int64
	Username string
	Password string
	Email    string
	Role     Role
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if u.Password == "" {
		return fmt.Errorf("password is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("email is required")
	}

	return nil
}

// Principal is the identity carried by a verified access token.
type Principal struct {
	UserID  int64
	TokenID string
}
