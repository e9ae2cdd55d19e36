package storage

import (
	"context"
	"maike/pkg/domain"
)

// ListUpdates describes the optional fields that may be changed on a list.
type ListUpdates struct {
	// Attributes, when provided, replaces all avatar attributes.
	Attributes *domain.Attributes
	// Status, when non-empty, sets the generation status.
	Status domain.GenerationStatus
	// IncrementAttempts bumps the generation attempt counter by one.
	IncrementAttempts bool
	// LastError, when provided, sets the last error text. An empty string
	// clears it.
	LastError *string
}

// ListStorage persists avatar attribute lists. Soft-deleted lists are invisible
// to every read.
type ListStorage interface {
	// StoreList inserts a list and returns the stored row.
	StoreList(ctx context.Context, list domain.List) (*domain.List, error)
	// ListByID fetches a list by ID regardless of owner. Returns nil when not found.
	ListByID(ctx context.Context, ID domain.ListID) (*domain.List, error)
	// UserLists returns every list of the user, newest first.
	UserLists(ctx context.Context, userID domain.UserID) ([]domain.List, error)
	// UpdateList applies updates and returns the updated row, or nil if not found.
	UpdateList(ctx context.Context, ID domain.ListID, updates ListUpdates) (*domain.List, error)
	// DeleteList soft-deletes the user's list and returns it, or nil if not found.
	DeleteList(ctx context.Context, userID domain.UserID, ID domain.ListID) (*domain.List, error)
}
