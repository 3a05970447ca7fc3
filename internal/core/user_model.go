package core

import (
	"context"
	"time"
)

// User is an authenticated system user.
type User struct {
	ID           int
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserService provides account registration and credential checks.
type UserService interface {
	// CreateUser registers a new account with a bcrypt-hashed password.
	CreateUser(ctx context.Context, email, password string) (*User, error)

	// Authenticate verifies email + password and returns the user on success.
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// GetByID returns a user by primary key.
	GetByID(ctx context.Context, userID int) (*User, error)
}
