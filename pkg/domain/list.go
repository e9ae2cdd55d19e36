package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ListID uniquely identifies an avatar attribute list.
type ListID uuid.UUID

// String returns the canonical textual representation of the ID.
func (id ListID) String() string { return uuid.UUID(id).String() }

// MarshalText lets list IDs appear as plain strings in JSON payloads.
func (id ListID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *ListID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

// ParseListID parses a textual list ID.
func ParseListID(s string) (ListID, error) {
	id, err := uuid.Parse(s)

	return ListID(id), err //nolint: wrapcheck
}

// GenerationStatus represents the lifecycle state of image generation for a list.
type GenerationStatus string

const (
	// GenerationStatusNone means images were never requested for the list.
	GenerationStatusNone GenerationStatus = "NONE"
	// GenerationStatusPending means a generation job is queued or running.
	GenerationStatusPending GenerationStatus = "PENDING"
	// GenerationStatusCompleted means the provider returned images and they were stored.
	GenerationStatusCompleted GenerationStatus = "COMPLETED"
	// GenerationStatusFailed means the job gave up; see LastError.
	GenerationStatusFailed GenerationStatus = "FAILED"
)

// Attributes is the set of avatar traits a user picks in the MAIke form.
type Attributes struct {
	ClothingAccessory string `json:"clothingAccessory"`
	HairColor         string `json:"hairColor"`
	Gender            string `json:"gender"`
	Background        string `json:"background"`
	ArtStyle          string `json:"artStyle"`
	WebsiteStyle      string `json:"websiteStyle"`
}

// Prompt renders the attributes as a text prompt for an image provider.
func (a Attributes) Prompt() string {
	parts := []string{
		a.ArtStyle,
		fmt.Sprintf("%s style", a.WebsiteStyle),
		fmt.Sprintf("1%s", a.Gender),
		fmt.Sprintf("%s hair", strings.ToLower(a.HairColor)),
		fmt.Sprintf("wearing %s", strings.ToLower(a.ClothingAccessory)),
		fmt.Sprintf("%s background", strings.ToLower(a.Background)),
		"portrait, avatar, high quality",
	}

	return strings.Join(parts, ", ")
}

// List is a saved set of avatar attributes together with the state of its
// image generation.
type List struct {
	// ID is the unique identifier of the list.
	ID ListID
	// UserID is the owner of the list.
	UserID UserID
	// Attributes are the avatar traits of the list.
	Attributes Attributes
	// GenerationStatus is the state of the latest image generation request.
	GenerationStatus GenerationStatus
	// GenerationAttempts counts how many times the provider was called for the list.
	GenerationAttempts uint
	// LastError stores the most recent generation error, if any.
	LastError string
	// CreatedAt is the time the list was saved.
	CreatedAt time.Time
	// UpdatedAt is the time the list was last modified.
	UpdatedAt time.Time
	// DeletedAt marks when the list was soft-deleted; zero value means not deleted.
	DeletedAt time.Time
}
