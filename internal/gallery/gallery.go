// Package gallery manages the users' collections of saved images.
package gallery

import (
	"context"
	"fmt"
	"maike/pkg/domain"
	"maike/pkg/serrors"
	"maike/pkg/storage"
)

type gallery struct {
	storage storage.Storage
}

func (g *gallery) UserCollection(ctx context.Context, userID, ownerID domain.UserID) ([]domain.Image, error) {
	if userID != ownerID {
		return nil, serrors.With(serrors.ErrForbidden, "cannot read another user's collection")
	}

	images, err := g.storage.UserSavedImages(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("could not get saved images: %w", err)
	}

	return images, nil
}

// Save marks an already generated image of the list as saved, or stores a new
// saved image when the URL is not known for the list yet.
func (g *gallery) Save(ctx context.Context, userID domain.UserID, listID domain.ListID, rawURL string) (*domain.Image, error) {
	url, err := NormalizeImageURL(rawURL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "Validation Error").
			WithFields(map[string]string{"url": "Image URL must be an absolute http(s) URL"})
	}

	var saved *domain.Image
	if err := g.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		list, err := tx.ListByID(ctx, listID)
		if err != nil {
			return fmt.Errorf("could not get list: %w", err)
		}
		if list == nil {
			return serrors.With(serrors.ErrNotFound, "list not found")
		}
		if list.UserID != userID {
			return serrors.With(serrors.ErrForbidden, "list belongs to another user")
		}

		images, err := tx.ListImages(ctx, listID)
		if err != nil {
			return fmt.Errorf("could not get list images: %w", err)
		}
		for _, img := range images {
			if img.URL != url {
				continue
			}
			saved, err = tx.SetImageSaved(ctx, img.ID, true)
			if err != nil {
				return fmt.Errorf("could not save image: %w", err)
			}

			return nil
		}

		stored, err := tx.StoreImages(ctx, domain.Image{
			UserID: userID,
			ListID: listID,
			URL:    url,
			Prompt: list.Attributes.Prompt(),
			Saved:  true,
		})
		if err != nil {
			return fmt.Errorf("could not store image: %w", err)
		}
		if len(stored) != 1 {
			return fmt.Errorf("expected one stored image, got %d", len(stored))
		}
		saved = &stored[0]

		return nil
	}); err != nil {
		return nil, err
	}

	return saved, nil
}

func (g *gallery) owned(ctx context.Context, userID domain.UserID, imageID domain.ImageID) error {
	img, err := g.storage.ImageByID(ctx, imageID)
	if err != nil {
		return fmt.Errorf("could not get image: %w", err)
	}
	if img == nil {
		return serrors.With(serrors.ErrNotFound, "image not found")
	}
	if img.UserID != userID {
		return serrors.With(serrors.ErrForbidden, "image belongs to another user")
	}

	return nil
}

func (g *gallery) SetSaved(ctx context.Context, userID domain.UserID, imageID domain.ImageID, saved bool) (*domain.Image, error) {
	if err := g.owned(ctx, userID, imageID); err != nil {
		return nil, err
	}

	img, err := g.storage.SetImageSaved(ctx, imageID, saved)
	if err != nil {
		return nil, fmt.Errorf("could not update image: %w", err)
	}
	if img == nil {
		return nil, serrors.With(serrors.ErrNotFound, "image not found")
	}

	return img, nil
}

func (g *gallery) Delete(ctx context.Context, userID domain.UserID, imageID domain.ImageID) error {
	if err := g.owned(ctx, userID, imageID); err != nil {
		return err
	}

	img, err := g.storage.DeleteImage(ctx, userID, imageID)
	if err != nil {
		return fmt.Errorf("could not delete image: %w", err)
	}
	if img == nil {
		return serrors.With(serrors.ErrNotFound, "image not found")
	}

	return nil
}

// New creates a Gallery service.
func New(storage storage.Storage) Gallery {
	return &gallery{storage: storage}
}
