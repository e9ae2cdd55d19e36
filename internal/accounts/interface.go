package accounts

import (
	"context"
	"io"
	"maike/pkg/domain"
)

// Changes holds the profile fields to update. Nil fields are kept.
type Changes struct {
	Username *string
	Email    *string
}

//go:generate mockgen -package mockaccounts -source=interface.go -destination=mock/mockaccounts.go *
type Accounts interface {
	User(ctx context.Context, userID domain.UserID) (*domain.User, error)
	Update(ctx context.Context, userID domain.UserID, changes Changes) (*domain.User, error)
	// UploadProfileImage stores the content of r as the user's new profile
	// picture and deletes the previous one.
	UploadProfileImage(ctx context.Context, userID domain.UserID, filename string, r io.Reader) (*domain.User, error)
	// StreamProfileImage reads the picture's metadata and chunks in one
	// transaction. begin is called with the metadata once the file is found
	// and returns the writer the chunks are copied to.
	StreamProfileImage(ctx context.Context, blobID domain.BlobID, begin func(file *domain.BlobFile) io.Writer) (int64, error)
}
