package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical textual representation of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText lets user IDs appear as plain strings in JSON payloads.
func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

// ParseUserID parses a textual user ID.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)

	return UserID(id), err //nolint: wrapcheck
}

// User is a registered account. HashedPassword never leaves the service layer.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID
	// Username is the unique public handle of the user.
	Username string
	// Email is the unique, lower-cased e-mail address used to log in.
	Email string
	// HashedPassword is the bcrypt hash of the user's password.
	HashedPassword []byte
	// ProfileImage references the blob holding the profile picture, if any.
	ProfileImage *BlobID
	// Lists holds the IDs of the avatar attribute lists owned by the user.
	Lists []ListID
	// Images holds the IDs of the images saved to the user's collection.
	Images []ImageID
	// CreatedAt is the time the account was registered.
	CreatedAt time.Time
	// UpdatedAt is the time the account was last modified.
	UpdatedAt time.Time
}
