package storage

import (
	"context"
	"maike/pkg/domain"
)

// UserUpdates describes the optional fields that may be changed on a user.
// Only non-nil fields are applied.
type UserUpdates struct {
	Username     *string
	Email        *string
	ProfileImage *domain.BlobID
}

// UserStorage persists user accounts. Lookups return nil when nothing matches.
// Returned users have Lists (newest first) and saved Images populated.
type UserStorage interface {
	// CreateUser inserts a user and returns the stored row. A collision on
	// username or email yields a *UniqueViolationError.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID fetches a user by ID.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UserByEmail fetches a user by e-mail, case-insensitively.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UsersByEmailOrUsername returns every user whose e-mail or username
	// matches (at most two).
	UsersByEmailOrUsername(ctx context.Context, email, username string) ([]domain.User, error)
	// UpdateUser applies updates and returns the updated row, or nil if the user
	// does not exist.
	UpdateUser(ctx context.Context, ID domain.UserID, updates UserUpdates) (*domain.User, error)
}
