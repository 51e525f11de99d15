package user

import (
	"context"
)

type UserRepository interface {
	// GetByID retrieves a user or ErrUserNotFound.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email or ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByGoogleID retrieves a user by linked Google account or
	// ErrUserNotFound.
	GetByGoogleID(ctx context.Context, googleID string) (User, error)

	// Create inserts a new user.
	Create(ctx context.Context, u User) (User, error)

	// LinkGoogleID attaches a Google account to an existing user.
	LinkGoogleID(ctx context.Context, id string, googleID string) error
}
