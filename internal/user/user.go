package user

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a user is not found.
var ErrNotFound = errors.New("user not found")

// ErrAlreadyExists is returned on username or email collisions.
var ErrAlreadyExists = errors.New("user already exists")

// User is an account in the catalog. Staff users may edit or delete
// any book; everybody else only their own.
type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string // bcrypt hash
	IsStaff   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
