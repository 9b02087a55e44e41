package auth

import "context"

// Storage persists users. Implementations must enforce email uniqueness
// atomically and report a conflict as ErrEmailAlreadyExists.
type Storage interface {
	// GetUserByEmail returns ErrUserNotFound when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// CreateUser inserts a user and returns it with ID and CreatedAt set.
	CreateUser(ctx context.Context, email, passwordHash string) (*User, error)
}
