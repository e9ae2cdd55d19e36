package gallery

import (
	"context"
	"maike/pkg/domain"
)

//go:generate mockgen -package mockgallery -source=interface.go -destination=mock/mockgallery.go *
type Gallery interface {
	// UserCollection returns the images the user saved, newest first.
	UserCollection(ctx context.Context, userID, ownerID domain.UserID) ([]domain.Image, error)
	// Save adds the image at url to the user's collection, attached to one of
	// their lists.
	Save(ctx context.Context, userID domain.UserID, listID domain.ListID, url string) (*domain.Image, error)
	SetSaved(ctx context.Context, userID domain.UserID, imageID domain.ImageID, saved bool) (*domain.Image, error)
	Delete(ctx context.Context, userID domain.UserID, imageID domain.ImageID) error
}
