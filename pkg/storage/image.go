package storage

import (
	"context"
	"maike/pkg/domain"
)

// ImageStorage persists generated and saved images.
type ImageStorage interface {
	// StoreImages inserts one or more images and returns the stored rows.
	StoreImages(ctx context.Context, images ...domain.Image) ([]domain.Image, error)
	// ImageByID fetches an image by ID. Returns nil when not found.
	ImageByID(ctx context.Context, ID domain.ImageID) (*domain.Image, error)
	// ListImages returns the images of a list, oldest first.
	ListImages(ctx context.Context, listID domain.ListID) ([]domain.Image, error)
	// UserSavedImages returns the user's collection, newest first.
	UserSavedImages(ctx context.Context, userID domain.UserID) ([]domain.Image, error)
	// SetImageSaved adds the image to or removes it from its owner's collection.
	// Returns nil when not found.
	SetImageSaved(ctx context.Context, ID domain.ImageID, saved bool) (*domain.Image, error)
	// DeleteImage removes the user's image and returns it, or nil if not found.
	DeleteImage(ctx context.Context, userID domain.UserID, ID domain.ImageID) (*domain.Image, error)
}
