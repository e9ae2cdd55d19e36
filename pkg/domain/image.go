package domain

import (
	"time"

	"github.com/google/uuid"
)

// ImageID uniquely identifies an image record.
type ImageID uuid.UUID

// String returns the canonical textual representation of the ID.
func (id ImageID) String() string { return uuid.UUID(id).String() }

// MarshalText lets image IDs appear as plain strings in JSON payloads.
func (id ImageID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *ImageID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

// ParseImageID parses a textual image ID.
func ParseImageID(s string) (ImageID, error) {
	id, err := uuid.Parse(s)

	return ImageID(id), err //nolint: wrapcheck
}

// Image is a picture generated for (or attached to) a list. Saved images form
// the user's collection.
type Image struct {
	ID        ImageID
	UserID    UserID
	ListID    ListID
	URL       string
	Prompt    string
	Saved     bool
	CreatedAt time.Time
}
