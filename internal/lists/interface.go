package lists

import (
	"context"
	"maike/pkg/domain"
	"maike/pkg/imagegen"
)

// Patch holds the attributes to change on a list. Empty fields are kept.
type Patch struct {
	ClothingAccessory string
	HairColor         string
	Gender            string
	Background        string
	ArtStyle          string
	WebsiteStyle      string
}

//go:generate mockgen -package mocklists -source=interface.go -destination=mock/mocklists.go *
type Lists interface {
	Create(ctx context.Context, userID domain.UserID, attrs domain.Attributes) (*domain.List, error)
	UserLists(ctx context.Context, userID, ownerID domain.UserID) ([]domain.List, error)
	Get(ctx context.Context, userID domain.UserID, listID domain.ListID) (*domain.List, error)
	Update(ctx context.Context, userID domain.UserID, listID domain.ListID, patch Patch) (*domain.List, error)
	Delete(ctx context.Context, userID domain.UserID, listID domain.ListID) error
	// Generate marks the list PENDING and enqueues an image generation job.
	Generate(ctx context.Context, userID domain.UserID, listID domain.ListID) (*domain.List, error)
	Images(ctx context.Context, userID domain.UserID, listID domain.ListID) ([]domain.Image, error)
	// GenerateImages runs one generation attempt for a PENDING list. It is
	// called by the background worker; lastAttempt marks the list FAILED when
	// the attempt does not succeed.
	GenerateImages(ctx context.Context, listID domain.ListID, lastAttempt bool) (imagegen.RateLimitStatus, error)
	// MarkFailed marks a PENDING list FAILED with cause as its last error. Lists
	// in any other state, or deleted ones, are left alone. The write is not
	// bound to ctx's cancellation.
	MarkFailed(ctx context.Context, listID domain.ListID, cause error) error
}
